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

// Package logx logs errctx chains with zerolog.
//
// A chain is written as the same nested object used for JSON:
//
//	{"level":"error","error":{"message":"Failed to start","cause":{"message":"disk full","cause":null}}}
//
// Install the hook once at startup to get this for every Err / AnErr call,
// or use Err to add both the pretty text and the structured chain to a single
// event.
package logx

import (
	"github.com/rs/zerolog"

	"dirpx.dev/errctx"
	"dirpx.dev/errctx/adapter"
	"dirpx.dev/errctx/apis"
)

// Field names used by Err.
const (
	FieldText  = "error"
	FieldChain = "error_chain"
)

type chainObject struct {
	v *apis.View
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (c chainObject) MarshalZerologObject(e *zerolog.Event) {
	e.Str(adapter.FieldMessage, c.v.Message)
	if c.v.Cause == nil {
		e.Interface(adapter.FieldCause, nil)
		return
	}
	e.Object(adapter.FieldCause, chainObject{v: c.v.Cause})
}

// Object returns err as a zerolog object of {"message", "cause"} links.
// Errors that are not chains become a single link. It returns nil for a nil
// err.
func Object(err error) zerolog.LogObjectMarshaler {
	v := adapter.ToView(err)
	if v == nil {
		return nil
	}
	return chainObject{v: v}
}

// MarshalError is a zerolog.ErrorMarshalFunc that expands chains into nested
// objects and leaves every other error to zerolog's default handling.
func MarshalError(err error) interface{} {
	if e, ok := err.(*errctx.Error); ok && e != nil {
		return chainObject{v: errctx.ViewOf(e)}
	}
	return err
}

// Install makes zerolog render every logged *errctx.Error as a nested object.
// It replaces zerolog.ErrorMarshalFunc globally and returns a function that
// restores the previous one.
func Install() (restore func()) {
	prev := zerolog.ErrorMarshalFunc
	zerolog.ErrorMarshalFunc = MarshalError
	return func() { zerolog.ErrorMarshalFunc = prev }
}

// Err adds err to ev twice: the pretty text under FieldText for humans
// reading the line, and the structured chain under FieldChain for machines.
// A nil err leaves ev unchanged.
func Err(ev *zerolog.Event, err error) *zerolog.Event {
	if err == nil {
		return ev
	}
	obj := Object(err)
	if obj == nil {
		return ev
	}
	return ev.Str(FieldText, err.Error()).Object(FieldChain, obj)
}
