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
	"encoding"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Mode selects how a chain is rendered by Render and by the %+v / %#v verbs.
type Mode uint8

const (
	// Pretty renders the message followed by one "caused by:" line per link.
	Pretty Mode = iota

	// Structural renders the recursive field dump of every node, with
	// "cause: nil" at a root node.
	Structural
)

// structIndent is one nesting level of the structural form.
const structIndent = "    "

// ErrModeInvalid is returned when a mode name is not recognized.
var ErrModeInvalid = errors.New("errctx: invalid mode")

var (
	_ encoding.TextMarshaler   = Mode(0)
	_ encoding.TextUnmarshaler = (*Mode)(nil)
	_ fmt.Stringer             = Mode(0)
)

// ParseMode converts "pretty" or "structural" (case-insensitive, surrounding
// space ignored) into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pretty":
		return Pretty, nil
	case "structural":
		return Structural, nil
	}
	return Pretty, fmt.Errorf("%w: %q", ErrModeInvalid, s)
}

// String returns the canonical name of m.
func (m Mode) String() string {
	switch m {
	case Pretty:
		return "pretty"
	case Structural:
		return "structural"
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m > Structural {
		return nil, fmt.Errorf("%w: %d", ErrModeInvalid, m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Set parses s into m. Together with String and Type it lets a *Mode be
// registered directly as a command-line flag value.
func (m *Mode) Set(s string) error { return m.UnmarshalText([]byte(s)) }

// Type names the flag value type.
func (*Mode) Type() string { return "mode" }

// Render renders err in the given mode.
//
// Errors that are not *Error render as their Error() text in Pretty mode and
// as their %#v form in Structural mode. A nil err renders as "<nil>".
func Render(err error, m Mode) string {
	if err == nil {
		return "<nil>"
	}
	e, ok := err.(*Error)
	if !ok {
		if m == Structural {
			return fmt.Sprintf("%#v", err)
		}
		return err.Error()
	}
	if e == nil {
		return "<nil>"
	}
	if m != Structural {
		return e.Error()
	}
	var b strings.Builder
	writeStructural(&b, e, 0)
	return b.String()
}

func writeStructural(b *strings.Builder, e *Error, depth int) {
	pad := strings.Repeat(structIndent, depth+1)

	b.WriteString("errctx.Error{\n")
	b.WriteString(pad)
	b.WriteString("message: ")
	b.WriteString(strconv.Quote(e.message))
	b.WriteString(",\n")
	b.WriteString(pad)
	b.WriteString("cause: ")
	switch c := e.cause.(type) {
	case nil:
		b.WriteString("nil")
	case *Error:
		writeStructural(b, c, depth+1)
	default:
		fmt.Fprintf(b, "%#v", c)
	}
	b.WriteString(",\n")
	b.WriteString(strings.Repeat(structIndent, depth))
	b.WriteString("}")
}
