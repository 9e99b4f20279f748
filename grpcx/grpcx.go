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

// Package grpcx carries errctx chains across gRPC boundaries.
//
// On the server, UnaryServerInterceptor turns a returned *errctx.Error into a
// status whose message is the pretty chain text and whose details hold the
// chain as a google.protobuf.Struct. On the client, ExtractChain rebuilds the
// chain from such a status.
package grpcx

import (
	"context"

	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/errctx"
	"dirpx.dev/errctx/adapter"
)

// CodeFn picks the gRPC status code for a chain. The chain itself carries no
// classification, so this is where callers map it (for example by inspecting
// the terminal cause with errors.Is).
type CodeFn func(ctx context.Context, e *errctx.Error) gcodes.Code

type config struct {
	codeFn CodeFn
}

// Option configures the interceptor.
type Option func(*config)

// WithCodeFn sets the function used to choose status codes. Without it every
// chain is reported as codes.Unknown.
func WithCodeFn(fn CodeFn) Option {
	return func(c *config) {
		if fn != nil {
			c.codeFn = fn
		}
	}
}

func defaultCode(context.Context, *errctx.Error) gcodes.Code { return gcodes.Unknown }

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// *errctx.Error results into gRPC statuses carrying the full chain.
//
// Errors of any other type are returned untouched.
func UnaryServerInterceptor(opts ...Option) grpc.UnaryServerInterceptor {
	cfg := config{codeFn: defaultCode}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		e, ok := err.(*errctx.Error)
		if !ok || e == nil {
			// Not a chain, leave it alone.
			return resp, err
		}

		return nil, Status(e, cfg.codeFn(ctx, e)).Err()
	}
}

// Status builds a status with code c, the pretty text of e as its message and
// the chain attached as a details entry. If the chain cannot be encoded the
// status is returned without details.
func Status(e *errctx.Error, c gcodes.Code) *gstatus.Status {
	base := gstatus.New(c, e.Error())

	s, err := adapter.ToProto(e)
	if err != nil || s == nil {
		return base
	}
	if with, err := base.WithDetails(s); err == nil {
		return with
	}
	return base
}

// ExtractChain pulls the chain out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractChain(err error) (*errctx.Error, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		s, ok := d.(*structpb.Struct)
		if !ok {
			continue
		}
		if e, err := adapter.FromProto(s); err == nil && e != nil {
			return e, true
		}
	}
	return nil, false
}
