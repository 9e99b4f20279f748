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

package adapter

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/errctx"
	"dirpx.dev/errctx/apis"
)

// Field names of the serialized chain shape.
const (
	FieldMessage = "message"
	FieldCause   = "cause"
)

// ToView converts any error into its portable chain view.
//
// Errors that provide their own view (apis.ViewProvider) are asked for it;
// everything else is walked link by link via errctx.ViewOf. A nil error
// yields a nil view.
func ToView(err error) *apis.View {
	if e, ok := err.(*errctx.Error); ok {
		return errctx.ViewOf(e)
	}
	if vp, ok := err.(apis.ViewProvider); ok {
		v := vp.ErrorView()
		return &v
	}
	return errctx.ViewOf(err)
}

// ToProto converts an error into a google.protobuf.Struct of the shape
//
//	{"message": "...", "cause": {...} | null}
//
// so it can travel inside gRPC status details or any other proto payload.
// A nil error yields a nil Struct.
func ToProto(err error) (*structpb.Struct, error) {
	v := ToView(err)
	if v == nil {
		return nil, nil
	}
	s, perr := structpb.NewStruct(viewMap(v))
	if perr != nil {
		return nil, errctx.WithErrContext(perr, "encode error chain as protobuf struct")
	}
	return s, nil
}

func viewMap(v *apis.View) map[string]any {
	m := map[string]any{FieldMessage: v.Message, FieldCause: nil}
	if v.Cause != nil {
		m[FieldCause] = viewMap(v.Cause)
	}
	return m
}

// FromProto rebuilds a chain from a Struct produced by ToProto.
//
// Every link must carry a string "message"; "cause" may be missing, null, or
// another such Struct. A nil Struct yields a nil chain.
func FromProto(s *structpb.Struct) (*errctx.Error, error) {
	if s == nil {
		return nil, nil
	}
	var (
		head  apis.View
		cur   = &head
		depth int
	)
	for {
		depth++
		msg, ok := s.GetFields()[FieldMessage].GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, errctx.New(fmt.Sprintf("link %d: %q is not a string", depth, FieldMessage))
		}
		cur.Message = msg.StringValue

		cause := s.GetFields()[FieldCause]
		switch k := cause.GetKind().(type) {
		case nil, *structpb.Value_NullValue:
			return errctx.FromView(&head), nil
		case *structpb.Value_StructValue:
			cur.Cause = &apis.View{}
			cur = cur.Cause
			s = k.StructValue
		default:
			return nil, errctx.New(fmt.Sprintf("link %d: %q is neither null nor an object", depth, FieldCause))
		}
	}
}
