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

// Package digitseq provides Sequence, a validated, ordered sequence of
// decimal digits, with lossless conversions to and from unsigned
// integers, digit collections and decimal strings.
//
// Sequences are plain in-memory values: no I/O, no locking, no hidden
// state. A Sequence shared across goroutines needs external
// synchronization, like any other mutable Go value.
package digitseq

import (
	"encoding"
	"fmt"
	"slices"
	"strings"

	"dirpx.dev/digitseq/digit"
)

// Sequence is an ordered, mutable container of decimal digits in
// most-significant-first positional order, as in ordinary written
// numbers.
//
// Every element observable through the public API is in the range 0..9:
// constructors and Append validate their inputs and fail without
// mutating on violation. The zero value is a valid empty sequence.
type Sequence struct {
	digits []digit.Digit
}

// Ensure Sequence implements the formatting and text interfaces it
// documents.
var (
	_ fmt.Stringer             = Sequence{}
	_ fmt.GoStringer           = Sequence{}
	_ encoding.TextMarshaler   = Sequence{}
	_ encoding.TextUnmarshaler = (*Sequence)(nil)
)

// New returns an empty sequence. Equivalent to the zero value; provided
// for symmetry with the fallible constructors.
func New() Sequence {
	return Sequence{}
}

// Len returns the number of digits in the sequence.
func (s Sequence) Len() int {
	return len(s.digits)
}

// At returns the digit at position i (0 = most significant).
// It panics if i is out of range, like slice indexing.
func (s Sequence) At(i int) digit.Digit {
	return s.digits[i]
}

// Digits returns a copy of the stored digits in order. Mutating the
// returned slice does not affect the sequence.
func (s Sequence) Digits() []digit.Digit {
	return slices.Clone(s.digits)
}

// Append validates v and pushes it to the end of the sequence.
// On violation it returns ErrInvalidDigit and leaves the sequence
// unchanged.
func (s *Sequence) Append(v uint8) error {
	d, err := digit.FromInt(v)
	if err != nil {
		return err
	}
	s.digits = append(s.digits, d)
	return nil
}

// Extend appends all of other's digits to s, preserving order.
// Both operands already satisfy the digit invariant, so Extend cannot
// fail.
func (s *Sequence) Extend(other Sequence) {
	s.digits = append(s.digits, other.digits...)
}

// Concat returns a new sequence holding a's digits followed by b's.
// Neither operand is modified and the result shares no storage with
// them.
func Concat(a, b Sequence) Sequence {
	ds := make([]digit.Digit, 0, len(a.digits)+len(b.digits))
	ds = append(ds, a.digits...)
	ds = append(ds, b.digits...)
	return Sequence{digits: ds}
}

// Equal reports whether s and other have the same length and identical
// digits at every position.
func (s Sequence) Equal(other Sequence) bool {
	return slices.Equal(s.digits, other.digits)
}

// Compare orders sequences lexicographically by digit position and
// returns -1, 0, or +1.
//
// NOTE: this is positional, not numeric, ordering. The shorter sequence
// [9] sorts after [1 0] even though 9 < 10: position 0 compares 9
// against 1 and decides.
func (s Sequence) Compare(other Sequence) int {
	return slices.Compare(s.digits, other.digits)
}

// String renders the digits as a plain decimal string with no
// separators. The empty sequence renders as "".
func (s Sequence) String() string {
	var b strings.Builder
	b.Grow(len(s.digits))
	for _, d := range s.digits {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

// GoString implements fmt.GoStringer, rendering the sequence as the
// type name followed by a bracketed digit list, e.g.
// digitseq.Sequence([3, 8, 7]). This is the %#v debug form.
func (s Sequence) GoString() string {
	var b strings.Builder
	b.WriteString("digitseq.Sequence([")
	for i, d := range s.digits {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte(byte('0' + d))
	}
	b.WriteString("])")
	return b.String()
}

// MarshalText implements encoding.TextMarshaler using the decimal
// string form. Leading zeros are preserved.
func (s Sequence) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It validates the text through Parse before assigning, so a failed
// unmarshal leaves the receiver unchanged.
func (s *Sequence) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
