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

// Package digit provides the validated single-digit value type used by
// digitseq sequences.
//
// A "digit" is an unsigned 8-bit value constrained to the closed range
// 0..9. Digits are meant to be:
//
//   - always valid once obtained through this package;
//   - cheap to copy and compare (they are plain bytes underneath);
//   - suitable for use in JSON/proto payloads via text marshaling.
//
// IMPORTANT: constructing a Digit by direct conversion (digit.Digit(12))
// bypasses validation. Packages that accept Digit values from untrusted
// callers should re-check them with Validate.
//
// This package defines the canonical representation and the functions
// that convert raw bytes and characters to that canonical form.
package digit
