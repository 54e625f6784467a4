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
	"errors"

	"dirpx.dev/digitseq/digit"
)

// The failure taxonomy of this module is closed: every fallible
// operation returns an error matching exactly one of the two sentinels
// below. Callers branch with errors.Is rather than by inspecting
// messages.
var (
	// ErrInvalidDigit reports that an input byte, character, or element
	// is not a decimal digit. It is the same sentinel as digit.ErrInvalid,
	// re-exported so that callers matching conversion failures only need
	// this package.
	//
	// The wrapped message names the offending value and, where it helps,
	// its position in the input.
	ErrInvalidDigit = digit.ErrInvalid

	// ErrSequenceTooLong reports that a sequence's numeric value exceeds
	// what the requested unsigned integer width can represent.
	ErrSequenceTooLong = errors.New("digitseq: sequence too long")
)
