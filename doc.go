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

// Package errctx attaches human-readable context to failures as they
// propagate up a call chain.
//
// Every wrap creates one immutable *Error node holding a message and the
// error it wraps. Printed, the chain reads like a narrative stack trace:
//
//	Failed to start the program
//	  caused by: Failed to load configuration
//	  caused by: Failed to read file
//	  caused by: open config.toml: no such file or directory
//
// # Attaching context
//
// Functions that return a value and an error compose with From:
//
//	data, err := errctx.From(os.ReadFile(path)).
//	    WithErrContext("Failed to read file")
//
// Functions that report presence with a boolean compose with Lookup:
//
//	home, err := errctx.Lookup(os.LookupEnv("HOME")).
//	    WithErrContext("HOME is not set")
//
// Plain error returns use the package-level helpers:
//
//	return errctx.WithDynErrContext(err, func() any {
//	    return fmt.Sprintf("Failed to load %q", path)
//	})
//
// The Dyn variants take a function that is invoked only when there is a
// failure to describe, so formatting costs nothing on the success path.
//
// # Display
//
// Error, %s and %v always produce the pretty text above. %+v and %#v use the
// package default Mode, which is Pretty unless the program is built with the
// errctx_structural tag, in which case the recursive structural form is used:
//
//	errctx.Error{
//	    message: "Failed to read file",
//	    cause: nil,
//	}
//
// Render renders either mode explicitly.
//
// # Serialization
//
// *Error marshals to JSON as {"message": string, "cause": object|null}. A
// terminal cause that is not an *Error is written as its error text with a
// null cause, so decoding always yields a chain of *Error nodes.
package errctx
