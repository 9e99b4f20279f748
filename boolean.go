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

// The helpers below turn checks that are not errors by themselves into root
// nodes:
//
//	if _, err := errctx.ErrorIfFalse(fileExists(path), "expected file to exist"); err != nil {
//	    return err
//	}
//
// cond is returned unchanged on both paths.

// ErrorIfTrue fails with message when cond is true.
func ErrorIfTrue(cond bool, message any) (bool, error) {
	if !cond {
		return cond, nil
	}
	return cond, wrap(text(message), nil)
}

// ErrorIfFalse fails with message when cond is false.
func ErrorIfFalse(cond bool, message any) (bool, error) {
	if cond {
		return cond, nil
	}
	return cond, wrap(text(message), nil)
}

// ErrorDynIfTrue fails when cond is true, building the message only then.
func ErrorDynIfTrue(cond bool, message func() any) (bool, error) {
	if !cond {
		return cond, nil
	}
	return cond, wrap(text(message()), nil)
}

// ErrorDynIfFalse fails when cond is false, building the message only then.
func ErrorDynIfFalse(cond bool, message func() any) (bool, error) {
	if cond {
		return cond, nil
	}
	return cond, wrap(text(message()), nil)
}
