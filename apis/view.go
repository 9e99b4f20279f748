/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

// ViewProvider is implemented by errors that can produce a transport-friendly,
// self-contained representation of their whole chain.
//
// The returned view MUST be safe to marshal (to JSON/proto).
type ViewProvider interface {
	error

	// ErrorView returns a serializable snapshot of the chain.
	ErrorView() View
}

// View is the serializable shape of a chain:
//
//	{"message": "...", "cause": {"message": "...", "cause": null}}
//
// Every link becomes one View. A terminal cause that is not a chain node is
// represented by its error text with a nil Cause, so a View never carries
// more than messages and nesting.
type View struct {
	// Message is the description attached at this link.
	Message string `json:"message"`

	// Cause is the next link, or nil at the end of the chain. It is always
	// emitted (as null when absent).
	Cause *View `json:"cause"`
}

// Depth returns the number of links in the view, counting v itself.
func (v *View) Depth() int {
	n := 0
	for ; v != nil; v = v.Cause {
		n++
	}
	return n
}
