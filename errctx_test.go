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
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

// notFoundError stands in for a foreign error at the end of a chain.
type notFoundError struct{}

func (notFoundError) Error() string { return "entity not found" }

func startupChain() *Error {
	return WithContext("Failed to start the program",
		WithContext("Failed to load configuration",
			WithContext("Failed to read file", notFoundError{})))
}

const startupPretty = `Failed to start the program
  caused by: Failed to load configuration
  caused by: Failed to read file
  caused by: entity not found`

func TestNew_NoCause(t *testing.T) {
	e := New("Error description")
	if got := e.Error(); got != "Error description" {
		t.Fatalf("Error() = %q, want %q", got, "Error description")
	}
	if e.Cause() != nil {
		t.Fatal("root node must have no cause")
	}
	if e.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", e.Depth())
	}
}

func TestNew_MessageConversion(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "plain", "plain"},
		{"stringer", Structural, "structural"},
		{"error", errors.New("from error"), "from error"},
		{"int", 42, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.in).Message(); got != tt.want {
				t.Fatalf("New(%v).Message() = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWithContext_PrettyScenario(t *testing.T) {
	e := startupChain()
	if got := e.Error(); got != startupPretty {
		t.Fatalf("Error() mismatch.\n--- want ---\n%s\n--- got ---\n%s", startupPretty, got)
	}
	if e.Depth() != 4 {
		t.Fatalf("Depth() = %d, want 4", e.Depth())
	}
}

func TestWithContext_RootCauseFromErr(t *testing.T) {
	_, err := Err[struct{}]("I/O Error")
	_, err = From(struct{}{}, err).WithErrContext("Failed to read file")
	_, err = From(struct{}{}, err).WithErrContext("Failed to load configuration")
	_, err = From(struct{}{}, err).WithErrContext("Failed to start the program")

	want := `Failed to start the program
  caused by: Failed to load configuration
  caused by: Failed to read file
  caused by: I/O Error`
	if got := err.Error(); got != want {
		t.Fatalf("Error() mismatch.\n--- want ---\n%s\n--- got ---\n%s", want, got)
	}
}

func TestWithContext_NilCause(t *testing.T) {
	var typed *Error
	for name, cause := range map[string]error{"untyped": nil, "typed": typed} {
		t.Run(name, func(t *testing.T) {
			e := WithContext("only message", cause)
			if e.Cause() != nil {
				t.Fatalf("nil cause must produce a root node, got %#v", e.Cause())
			}
			if e.Error() != "only message" {
				t.Fatalf("Error() = %q", e.Error())
			}
		})
	}
}

// ptrError is a foreign error implemented on a pointer receiver.
type ptrError struct{ msg string }

func (e *ptrError) Error() string { return e.msg }

func TestWithContext_TypedNilForeignCause(t *testing.T) {
	var cause error = (*ptrError)(nil)

	e := WithContext("top", cause)
	if e.Cause() != nil {
		t.Fatalf("typed nil cause must produce a root node, got %#v", e.Cause())
	}
	if e.Error() != "top" {
		t.Fatalf("Error() = %q", e.Error())
	}
	if got := Render(e, Structural); !strings.Contains(got, "cause: nil") {
		t.Fatalf("structural rendering lacks a nil cause:\n%s", got)
	}

	_, err := From(0, cause).WithErrContext("wrapped")
	if err == nil || err.Error() != "wrapped" || err.(*Error).Cause() != nil {
		t.Fatalf("got %#v", err)
	}
	if err := WithErrContext(cause, "helper"); err.Error() != "helper" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestErr_ZeroValue(t *testing.T) {
	v, err := Err[int]("nope")
	if v != 0 {
		t.Fatalf("value = %d, want zero", v)
	}
	var e *Error
	if !errors.As(err, &e) || e.Message() != "nope" || e.Cause() != nil {
		t.Fatalf("unexpected error %#v", err)
	}
}

func TestUnwrap_IsAndAs(t *testing.T) {
	e := WithContext("outer", WithContext("inner", fs.ErrNotExist))
	if !errors.Is(e, fs.ErrNotExist) {
		t.Fatal("errors.Is must reach the terminal cause")
	}
	var nf notFoundError
	if errors.As(e, &nf) {
		t.Fatal("errors.As matched an unrelated type")
	}
	inner, ok := errors.Unwrap(e).(*Error)
	if !ok || inner.Message() != "inner" {
		t.Fatalf("Unwrap() = %#v", errors.Unwrap(e))
	}
}

func TestPretty_ForeignWrapperEndsChain(t *testing.T) {
	// A non-*Error wrapper is a terminal cause even if it wraps a chain.
	wrapped := fmt.Errorf("wrapped: %w", New("hidden"))
	e := WithContext("top", wrapped)
	want := "top\n  caused by: wrapped: hidden"
	if e.Error() != want {
		t.Fatalf("Error() = %q, want %q", e.Error(), want)
	}
	if e.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", e.Depth())
	}
}

func TestNilReceiver(t *testing.T) {
	var e *Error
	if e.Error() != "<nil>" || e.Message() != "" || e.Cause() != nil || e.Depth() != 0 {
		t.Fatal("nil *Error accessors must be safe")
	}
}

func TestFormat_Verbs(t *testing.T) {
	e := startupChain()
	tests := []struct {
		format string
		want   string
	}{
		{"%s", startupPretty},
		{"%v", startupPretty},
		{"%q", fmt.Sprintf("%q", startupPretty)},
		{"%+v", Render(e, DefaultMode)},
		{"%#v", Render(e, DefaultMode)},
		{"%d", "%!d(*errctx.Error=" + startupPretty + ")"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			if got := fmt.Sprintf(tt.format, e); got != tt.want {
				t.Fatalf("Sprintf(%s) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestFormat_WidthAndPrecision(t *testing.T) {
	e := New("ab")
	for _, tc := range []struct {
		format string
		want   string
	}{
		{"%6v", "    ab"},
		{"%-6s|", "ab    |"},
		{"%.1s", "a"},
		{"%8q", `    "ab"`},
		{"%-5v|", "ab   |"},
	} {
		if got := fmt.Sprintf(tc.format, e); got != tc.want {
			t.Fatalf("Sprintf(%q) = %q, want %q", tc.format, got, tc.want)
		}
	}
}

func TestFormat_InsideErrorf(t *testing.T) {
	err := fmt.Errorf("boot: %w", New("disk missing"))
	if !strings.HasSuffix(err.Error(), "disk missing") {
		t.Fatalf("Errorf lost the message: %q", err.Error())
	}
}
