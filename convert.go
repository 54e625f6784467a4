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

package digitseq

import (
	"fmt"
	"slices"

	"dirpx.dev/digitseq/digit"
)

// Unsigned constrains the integer conversions to unsigned types.
// Declared locally so the module needs no external constraints package.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// FromUint decomposes an unsigned integer into its decimal digits,
// most significant first. Zero maps to the single-digit sequence [0].
//
// Integer decomposition cannot produce an out-of-range digit, so there
// is no error path.
func FromUint[T Unsigned](n T) Sequence {
	if n == 0 {
		return Sequence{digits: []digit.Digit{0}}
	}
	// A uint64 has at most 20 decimal digits.
	ds := make([]digit.Digit, 0, 20)
	for n > 0 {
		ds = append(ds, digit.Digit(n%10))
		n /= 10
	}
	slices.Reverse(ds)
	return Sequence{digits: ds}
}

// Uint folds the sequence left to right as positional decimal digits
// (v = v*10 + d) into the requested unsigned type.
//
// If the accumulated value would exceed the target type's maximum, Uint
// fails with ErrSequenceTooLong and returns zero. The empty sequence
// converts to zero.
func Uint[T Unsigned](s Sequence) (T, error) {
	var v T
	max := ^T(0)
	for _, d := range s.digits {
		if v > max/10 || (v == max/10 && T(d) > max%10) {
			return 0, fmt.Errorf("%w: %q exceeds the target maximum %d",
				ErrSequenceTooLong, s.String(), uint64(max))
		}
		v = v*10 + T(d)
	}
	return v, nil
}

// FromDigits validates a collection of raw digit values and returns the
// corresponding sequence.
//
// Validation runs left to right; the first value above 9 fails the
// whole conversion with ErrInvalidDigit naming that value, and no
// sequence is constructed.
func FromDigits(values ...uint8) (Sequence, error) {
	ds := make([]digit.Digit, len(values))
	for i, v := range values {
		d, err := digit.FromInt(v)
		if err != nil {
			return Sequence{}, fmt.Errorf("element %d: %w", i, err)
		}
		ds[i] = d
	}
	return Sequence{digits: ds}, nil
}

// Parse converts a decimal string to a sequence, one digit per
// character in order. Only ASCII '0'..'9' are accepted; the first other
// character (signs and whitespace included) fails the conversion with
// ErrInvalidDigit. The empty string parses to the empty sequence.
func Parse(s string) (Sequence, error) {
	ds := make([]digit.Digit, 0, len(s))
	for i, r := range s {
		d, err := digit.FromRune(r)
		if err != nil {
			return Sequence{}, fmt.Errorf("offset %d: %w", i, err)
		}
		ds = append(ds, d)
	}
	return Sequence{digits: ds}, nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level sequence values in var blocks and in tests.
func MustParse(s string) Sequence {
	seq, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return seq
}
