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

// CausedError represents an error that exposes its underlying cause.
//
// While Go 1.13 introduced errors.Unwrap, having this interface in apis lets
// us walk a chain even in places where we don't want to depend on
// errors.As / errors.Is directly, or where we want to keep the contract
// explicit.
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause (a root node), they SHOULD return nil.
type CausedError interface {
	error

	// Message returns the description attached at this link only, without
	// the text of any cause.
	Message() string

	// Cause returns the underlying error that triggered this error, if any.
	// May return nil.
	Cause() error
}
