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

// Package httpx writes errctx chains as HTTP error responses and reads them
// back on the client side.
package httpx

import (
	"io"
	"mime"
	"net/http"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/errctx"
	"dirpx.dev/errctx/adapter"
)

// ContentType is the media type of chain bodies.
const ContentType = "application/json"

// maxBody bounds how much of a response Decode will read.
const maxBody = 1 << 20

// Writer is a thin adapter that knows how to turn an error into an HTTP
// response.
type Writer struct {
	// Status picks the HTTP status for the error. When nil, every error is
	// reported as 500 Internal Server Error.
	Status func(err error) int
}

// Write serializes err as
//
//	{"message": "...", "cause": {...} | null}
//
// and writes it to the response writer with the status resolved by
// w.Status. A nil err writes nothing.
//
// No redaction is performed: every message in the chain is exposed as-is.
// Handlers that talk to untrusted clients should wrap only what they are
// willing to show.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	code := http.StatusInternalServerError
	if w.Status != nil {
		code = w.Status(err)
	}

	s, perr := adapter.ToProto(err)
	if perr != nil {
		// The chain held text that cannot be encoded; keep the status and
		// fall back to a single-link body.
		s, _ = adapter.ToProto(errctx.New(http.StatusText(code)))
	}

	rw.Header().Set("Content-Type", ContentType)
	rw.WriteHeader(code)

	// IMPORTANT: Struct must go through protojson; its fields are oneof
	// wrappers that encoding/json does not understand.
	b, _ := protojson.Marshal(s)
	_, _ = rw.Write(b)
}

// Decode reads a chain written by Writer from resp. The body is consumed but
// not closed.
func Decode(resp *http.Response) (*errctx.Error, error) {
	if resp == nil || resp.Body == nil {
		return nil, errctx.New("decode error response: no body")
	}
	if mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err != nil || mt != ContentType {
		return nil, errctx.New("decode error response: content type " +
			resp.Header.Get("Content-Type") + " is not " + ContentType)
	}

	b, err := errctx.From(io.ReadAll(io.LimitReader(resp.Body, maxBody))).
		WithErrContext("decode error response: read body")
	if err != nil {
		return nil, err
	}

	var s structpb.Struct
	if err := protojson.Unmarshal(b, &s); err != nil {
		return nil, errctx.WithContext("decode error response: parse body", err)
	}
	e, err := adapter.FromProto(&s)
	if err != nil {
		return nil, errctx.WithContext("decode error response", err)
	}
	return e, nil
}
