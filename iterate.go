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
	"iter"

	"dirpx.dev/digitseq/digit"
)

// All returns an iterator over the digits in stored order, most
// significant first. The iterator yields copies; it is restartable and
// leaves the sequence usable afterward.
func (s Sequence) All() iter.Seq[digit.Digit] {
	return func(yield func(digit.Digit) bool) {
		for _, d := range s.digits {
			if !yield(d) {
				return
			}
		}
	}
}

// Indexed returns an iterator over (position, digit) pairs in stored
// order, position 0 being the most significant digit.
func (s Sequence) Indexed() iter.Seq2[int, digit.Digit] {
	return func(yield func(int, digit.Digit) bool) {
		for i, d := range s.digits {
			if !yield(i, d) {
				return
			}
		}
	}
}

// Mutable returns an iterator yielding pointers to the stored digits,
// letting the caller rewrite digits in place.
//
// CONTRACT: any value written through a yielded pointer must itself be
// a valid digit (0..9). The container cannot intercept writes through
// the pointer, so an out-of-range write is a caller bug, not a checked
// error; it breaks the sequence invariant for every later observer.
func (s *Sequence) Mutable() iter.Seq[*digit.Digit] {
	return func(yield func(*digit.Digit) bool) {
		for i := range s.digits {
			if !yield(&s.digits[i]) {
				return
			}
		}
	}
}
