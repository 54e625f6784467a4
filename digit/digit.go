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

package digit

import (
	"encoding"
	"errors"
	"fmt"
	"unicode/utf8"
)

// Digit is the canonical, validated representation of a single decimal
// digit.
//
// It is defined as a separate type (not just uint8) so that other
// packages can explicitly declare which values they expect and to avoid
// accidental mixing of raw bytes with validated digits.
type Digit uint8

// Min and Max define the allowed value range for a digit.
//
// We keep these as separate constants so they can be referenced in
// validation errors, tests, or in other packages that want to mirror
// the same constraints.
const (
	// Min is the smallest valid digit.
	Min Digit = 0

	// Max is the largest valid digit. Anything above 9 is not a decimal
	// digit and is rejected everywhere in this module.
	Max Digit = 9
)

var (
	// ErrInvalid is returned when a value cannot be validated as a
	// decimal digit.
	//
	// Having a dedicated sentinel error makes it easier for callers and
	// tests to detect "this is about digit range" vs "this is some other
	// error".
	ErrInvalid = errors.New("digitseq: invalid digit")
)

// Ensure Digit implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Digit)(nil)
	_ encoding.TextUnmarshaler = (*Digit)(nil)
)

// FromInt validates a raw byte value and returns it as a canonical
// Digit. Values above 9 fail with ErrInvalid, wrapped with the
// offending value.
func FromInt(v uint8) (Digit, error) {
	if v > uint8(Max) {
		return 0, fmt.Errorf("%w: value %d out of range 0..9", ErrInvalid, v)
	}
	return Digit(v), nil
}

// FromRune converts a single character to its digit value.
//
// Only the ASCII characters '0' through '9' are accepted. Signs,
// whitespace, and non-ASCII digits (e.g. Eastern Arabic numerals) all
// fail with ErrInvalid naming the offending character.
func FromRune(r rune) (Digit, error) {
	if r < '0' || r > '9' {
		return 0, fmt.Errorf("%w: character %q is not an ASCII decimal digit", ErrInvalid, r)
	}
	return Digit(r - '0'), nil
}

// Validate checks whether the provided Digit is in range.
//
// This matters for values obtained by direct conversion rather than
// through FromInt/FromRune.
func Validate(d Digit) error {
	if d > Max {
		return fmt.Errorf("%w: value %d out of range 0..9", ErrInvalid, uint8(d))
	}
	return nil
}

// Rune returns the ASCII character for the digit, e.g. 7 -> '7'.
// The result is only meaningful for valid digits.
func (d Digit) Rune() rune {
	return rune('0' + d)
}

// String returns the single-character decimal representation of the digit.
func (d Digit) String() string {
	return string(d.Rune())
}

// MarshalText implements encoding.TextMarshaler.
//
// It refuses to marshal out-of-range values so that forged digits never
// leak into serialized output.
func (d Digit) MarshalText() ([]byte, error) {
	if err := Validate(d); err != nil {
		return nil, err
	}
	return []byte{byte('0' + d)}, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It accepts exactly one ASCII digit character.
func (d *Digit) UnmarshalText(text []byte) error {
	r, size := utf8.DecodeRune(text)
	if size == 0 || size != len(text) {
		return fmt.Errorf("%w: expected a single digit character, got %q", ErrInvalid, string(text))
	}
	parsed, err := FromRune(r)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
