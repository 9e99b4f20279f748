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
	"fmt"
	"io"
	"reflect"
	"strings"
)

// causePrefix separates one link from the next in pretty output.
const causePrefix = "\n  caused by: "

// Error is one link of a context chain.
//
// It carries:
//   - message: what the caller was trying to do when the failure happened;
//   - cause: the wrapped failure, nil for a root node.
//
// A cause that is itself an *Error continues the chain; anything else is the
// terminal cause. Error values are never modified after construction, so a
// chain may be read from several goroutines at once.
type Error struct {
	message string
	cause   error
}

// New returns a root node with no cause.
//
// message is rendered with fmt.Sprint, so strings, fmt.Stringer and error
// values are all accepted.
func New(message any) *Error {
	return &Error{message: text(message)}
}

// WithContext wraps cause under a new node carrying message.
//
// A nil cause, including a typed nil pointer such as a nil *Error, yields a
// root node.
func WithContext(message any, cause error) *Error {
	return wrap(text(message), cause)
}

// Err returns the zero value of T together with a new root node, for call
// sites that fail immediately:
//
//	if len(args) == 0 {
//	    return errctx.Err[Config]("no configuration given")
//	}
func Err[T any](message any) (T, error) {
	var zero T
	return zero, New(message)
}

// wrap is the single place new links are built.
//
// A cause holding a nil pointer (a nil *Error or any other typed nil error)
// is stored as no cause at all, so rendering never calls a method on it.
func wrap(message string, cause error) *Error {
	if isNilPointer(cause) {
		cause = nil
	}
	return &Error{message: message, cause: cause}
}

func isNilPointer(err error) bool {
	if err == nil {
		return false
	}
	if e, ok := err.(*Error); ok {
		return e == nil
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func text(message any) string {
	if s, ok := message.(string); ok {
		return s
	}
	return fmt.Sprint(message)
}

// Message returns the description attached at this link only.
func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

// Cause returns the wrapped failure, or nil for a root node.
func (e *Error) Cause() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause() }

// Depth returns the number of links in the chain: every *Error node plus the
// terminal cause, if there is one.
func (e *Error) Depth() int {
	if e == nil {
		return 0
	}
	n := 1
	for c := e.cause; c != nil; n++ {
		next, ok := c.(*Error)
		if !ok {
			return n + 1
		}
		c = next.cause
	}
	return n
}

// Error implements the built-in error interface with the pretty format:
//
//	<message>
//	  caused by: <message>
//	  caused by: <terminal cause>
//
// A root node renders as its message alone.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.cause == nil {
		return e.message
	}
	var b strings.Builder
	writePretty(&b, e)
	return b.String()
}

func writePretty(b *strings.Builder, e *Error) {
	b.WriteString(e.message)
	for c := e.cause; c != nil; {
		b.WriteString(causePrefix)
		next, ok := c.(*Error)
		if !ok {
			b.WriteString(c.Error())
			return
		}
		b.WriteString(next.message)
		c = next.cause
	}
}

// Format implements fmt.Formatter.
//
// %s, %v and %q print the pretty text and honor width, precision and the
// '-' flag. %+v and %#v print the chain in DefaultMode.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') || s.Flag('#') {
			_, _ = io.WriteString(s, Render(e, DefaultMode))
			return
		}
		_, _ = fmt.Fprintf(s, fmt.FormatString(s, verb), e.Error())
	case 's', 'q':
		_, _ = fmt.Fprintf(s, fmt.FormatString(s, verb), e.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(*errctx.Error=%s)", verb, e.Error())
	}
}
