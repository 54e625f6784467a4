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

package grpcx

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/digitseq"
)

// Kind labels used in the status detail payload. Stable: clients may
// branch on them.
const (
	KindInvalidDigit    = "invalid_digit"
	KindSequenceTooLong = "sequence_too_long"
)

// Code maps a digitseq error to the gRPC status code a boundary should
// return:
//
//   - ErrInvalidDigit    -> InvalidArgument (the client sent bad input)
//   - ErrSequenceTooLong -> OutOfRange      (the value does not fit)
//
// nil maps to OK; anything outside the digitseq taxonomy maps to
// Unknown.
func Code(err error) gcodes.Code {
	switch {
	case err == nil:
		return gcodes.OK
	case errors.Is(err, digitseq.ErrInvalidDigit):
		return gcodes.InvalidArgument
	case errors.Is(err, digitseq.ErrSequenceTooLong):
		return gcodes.OutOfRange
	default:
		return gcodes.Unknown
	}
}

// StatusError converts a digitseq error into a gRPC status error with a
// structured detail describing the failure kind. Errors outside the
// digitseq taxonomy are returned unchanged; nil stays nil.
func StatusError(err error) error {
	if err == nil {
		return nil
	}
	c := Code(err)
	if c == gcodes.Unknown {
		// Not ours — return as-is.
		return err
	}

	base := gstatus.New(c, err.Error())

	kind := KindInvalidDigit
	if c == gcodes.OutOfRange {
		kind = KindSequenceTooLong
	}
	detail := &structpb.Struct{Fields: map[string]*structpb.Value{
		"kind":    structpb.NewStringValue(kind),
		"message": structpb.NewStringValue(err.Error()),
	}}

	// Try to attach the detail. If it fails — return base.
	if anyDetail, err := anypb.New(detail); err == nil {
		if with, err := base.WithDetails(anyDetail); err == nil {
			return with.Err()
		}
	}

	return base.Err()
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that
// maps digitseq errors escaping handlers into gRPC status errors via
// StatusError. Handler errors outside the digitseq taxonomy pass
// through untouched.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, StatusError(err)
	}
}

// ExtractDetail pulls the structured failure detail out of a gRPC
// error, if present. Useful in tests and client code.
func ExtractDetail(err error) (*structpb.Struct, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if s, ok := d.(*structpb.Struct); ok {
			return s, true
		}
	}
	return nil, false
}
