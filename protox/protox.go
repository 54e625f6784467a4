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

// Package protox adapts digitseq sequences to the protobuf "struct"
// value model, so they can travel as a JSON-style array of small
// integers. The core digitseq package stays free of any serialization
// framework; this adapter owns the protobuf dependency.
package protox

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/digitseq"
)

// ToListValue converts a sequence into a protobuf ListValue holding
// one number per digit, in stored order. The empty sequence converts
// to an empty list.
func ToListValue(s digitseq.Sequence) *structpb.ListValue {
	vals := make([]*structpb.Value, 0, s.Len())
	for d := range s.All() {
		vals = append(vals, structpb.NewNumberValue(float64(d)))
	}
	return &structpb.ListValue{Values: vals}
}

// FromListValue converts a protobuf ListValue back into a sequence.
//
// Every element must be an integral number in 0..9; the first element
// that is not (wrong kind, fractional, negative, or above 9) fails the
// conversion with digitseq.ErrInvalidDigit semantics, and no sequence
// is constructed. A nil or empty list converts to the empty sequence.
func FromListValue(lv *structpb.ListValue) (digitseq.Sequence, error) {
	if lv == nil {
		return digitseq.New(), nil
	}
	values := make([]uint8, len(lv.GetValues()))
	for i, v := range lv.GetValues() {
		nv, ok := v.GetKind().(*structpb.Value_NumberValue)
		if !ok {
			return digitseq.Sequence{}, fmt.Errorf("element %d: %w: not a number", i, digitseq.ErrInvalidDigit)
		}
		f := nv.NumberValue
		if f != math.Trunc(f) || f < 0 || f > 9 {
			return digitseq.Sequence{}, fmt.Errorf("element %d: %w: value %v out of range 0..9", i, digitseq.ErrInvalidDigit, f)
		}
		values[i] = uint8(f)
	}
	return digitseq.FromDigits(values...)
}

// MarshalJSON renders the sequence as a JSON array of digit values,
// e.g. [3,8,7], via protojson.
func MarshalJSON(s digitseq.Sequence) ([]byte, error) {
	return protojson.Marshal(ToListValue(s))
}

// UnmarshalJSON parses a JSON array of digit values into a sequence.
// Range violations surface with the same semantics as FromListValue;
// malformed JSON surfaces protojson's own error.
func UnmarshalJSON(data []byte) (digitseq.Sequence, error) {
	lv := &structpb.ListValue{}
	if err := protojson.Unmarshal(data, lv); err != nil {
		return digitseq.Sequence{}, err
	}
	return FromListValue(lv)
}
