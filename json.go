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

package errctx

import (
	"encoding/json"
	"errors"

	"dirpx.dev/errctx/apis"
)

var (
	_ apis.CausedError  = (*Error)(nil)
	_ apis.ViewProvider = (*Error)(nil)
	_ json.Marshaler    = (*Error)(nil)
	_ json.Unmarshaler  = (*Error)(nil)
)

// ErrorView returns the serializable shape of the chain rooted at e.
func (e *Error) ErrorView() apis.View {
	if e == nil {
		return apis.View{}
	}
	return *ViewOf(e)
}

// ViewOf returns the view of any error: *Error nodes keep their message, and
// any other error becomes a final link holding its Error() text. It returns
// nil for a nil err.
func ViewOf(err error) *apis.View {
	var head apis.View
	cur := &head
	for {
		switch e := err.(type) {
		case nil:
			return nil
		case *Error:
			if e == nil {
				return nil
			}
			cur.Message = e.message
			if e.cause == nil {
				return &head
			}
			cur.Cause = &apis.View{}
			cur = cur.Cause
			err = e.cause
		default:
			cur.Message = e.Error()
			return &head
		}
	}
}

// FromView rebuilds a chain from its view. Every link, including the last,
// becomes an *Error node. It returns nil for a nil view.
func FromView(v *apis.View) *Error {
	if v == nil {
		return nil
	}
	links := make([]string, 0, v.Depth())
	for ; v != nil; v = v.Cause {
		links = append(links, v.Message)
	}
	var e *Error
	for i := len(links) - 1; i >= 0; i-- {
		e = wrap(links[i], e)
	}
	return e
}

// MarshalJSON writes the chain as nested {"message", "cause"} objects.
func (e *Error) MarshalJSON() ([]byte, error) {
	if e == nil {
		return []byte("null"), nil
	}
	return json.Marshal(ViewOf(e))
}

// ErrDecodeTarget is returned when JSON is decoded into an *Error that
// already holds a chain.
var ErrDecodeTarget = errors.New("errctx: decode target already holds a chain")

// UnmarshalJSON fills e, which must be a zero Error, with the chain
// described by b. A JSON null leaves e unchanged.
//
// Nodes reachable from another chain are never overwritten: decoding into a
// non-zero Error fails with ErrDecodeTarget and leaves it untouched, so
// decode into a fresh value (or a nil *Error field) instead.
func (e *Error) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if e.message != "" || e.cause != nil {
		return ErrDecodeTarget
	}
	var v apis.View
	if err := json.Unmarshal(b, &v); err != nil {
		return WithErrContext(err, "decode error chain")
	}
	*e = *FromView(&v)
	return nil
}
