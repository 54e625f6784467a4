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
	"fmt"
	"testing"
)

func TestNew_Empty(t *testing.T) {
	s := New()
	if s.Len() != 0 {
		t.Fatalf("New().Len() = %d, want 0", s.Len())
	}
	if s.String() != "" {
		t.Fatalf("New().String() = %q, want empty", s.String())
	}
	n, err := Uint[uint64](s)
	if err != nil {
		t.Fatalf("Uint(empty) unexpected error: %v", err)
	}
	if n != 0 {
		t.Fatalf("Uint(empty) = %d, want 0", n)
	}
}

func TestZeroValue_IsUsable(t *testing.T) {
	var s Sequence
	if err := s.Append(3); err != nil {
		t.Fatalf("Append on zero value: %v", err)
	}
	if s.String() != "3" {
		t.Fatalf("String() = %q, want %q", s.String(), "3")
	}
}

func TestAppend(t *testing.T) {
	s := MustParse("38")

	if err := s.Append(7); err != nil {
		t.Fatalf("Append(7) unexpected error: %v", err)
	}
	if s.String() != "387" {
		t.Fatalf("after Append: %q, want %q", s.String(), "387")
	}

	// Invalid append must not mutate.
	if err := s.Append(10); err == nil {
		t.Fatal("Append(10) expected error")
	} else if !errors.Is(err, ErrInvalidDigit) {
		t.Fatalf("Append(10) error %v does not match ErrInvalidDigit", err)
	}
	if s.String() != "387" {
		t.Fatalf("sequence mutated by failed Append: %q", s.String())
	}
}

func TestExtend(t *testing.T) {
	s := MustParse("38")
	s.Extend(MustParse("7"))
	if s.String() != "387" {
		t.Fatalf("Extend: %q, want %q", s.String(), "387")
	}

	// Extending by the empty sequence is a no-op.
	s.Extend(New())
	if s.String() != "387" {
		t.Fatalf("Extend(empty): %q, want %q", s.String(), "387")
	}
}

func TestConcat(t *testing.T) {
	a := MustParse("38")
	b := MustParse("7")

	got := Concat(a, b)
	if !got.Equal(FromUint(uint(387))) {
		t.Fatalf("Concat = %v, want 387", got)
	}

	// Operands untouched.
	if a.String() != "38" || b.String() != "7" {
		t.Fatalf("Concat mutated operands: %q, %q", a.String(), b.String())
	}

	// Result shares no storage with a.
	if err := a.Append(9); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if got.String() != "387" {
		t.Fatalf("Concat result aliases operand storage: %q", got.String())
	}
}

func TestEqual_IsPositionalNotNumeric(t *testing.T) {
	ten := MustParse("10")
	nine := MustParse("9")

	if ten.Equal(nine) {
		t.Fatal("[1 0] must not equal [9]")
	}
	if !ten.Equal(FromUint(uint8(10))) {
		t.Fatal("[1 0] must equal FromUint(10)")
	}

	// Leading zeros are significant for equality.
	if MustParse("005").Equal(MustParse("5")) {
		t.Fatal("[0 0 5] must not equal [5]")
	}
}

func TestCompare_Lexicographic(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal", "387", "387", 0},
		{"shorter prefix first", "38", "387", -1},
		{"position decides before length", "9", "10", 1},
		{"leading zero sorts first", "05", "5", -1},
		{"empty before anything", "", "0", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustParse(tt.a).Compare(MustParse(tt.b))
			if got != tt.want {
				t.Fatalf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if back := MustParse(tt.b).Compare(MustParse(tt.a)); back != -tt.want {
				t.Fatalf("Compare(%q, %q) = %d, want %d", tt.b, tt.a, back, -tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   Sequence
		want string
	}{
		{"empty", New(), ""},
		{"zero", FromUint(uint(0)), "0"},
		{"leading zeros kept", MustParse("00387"), "00387"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGoString(t *testing.T) {
	if got := fmt.Sprintf("%#v", MustParse("387")); got != "digitseq.Sequence([3, 8, 7])" {
		t.Fatalf("%%#v = %q", got)
	}
	if got := New().GoString(); got != "digitseq.Sequence([])" {
		t.Fatalf("GoString(empty) = %q", got)
	}
}

func TestAtAndLen(t *testing.T) {
	s := MustParse("387")
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	for i, want := range []uint8{3, 8, 7} {
		if uint8(s.At(i)) != want {
			t.Fatalf("At(%d) = %d, want %d", i, s.At(i), want)
		}
	}
}

func TestDigits_ReturnsCopy(t *testing.T) {
	s := MustParse("387")
	ds := s.Digits()
	ds[0] = 9
	if s.String() != "387" {
		t.Fatalf("mutating Digits() result changed the sequence: %q", s.String())
	}
}

func TestSequence_MarshalText(t *testing.T) {
	text, err := MustParse("0042").MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "0042" {
		t.Fatalf("MarshalText() = %q, want %q", string(text), "0042")
	}
}

func TestSequence_UnmarshalText(t *testing.T) {
	var s Sequence
	if err := s.UnmarshalText([]byte("92")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if s.String() != "92" {
		t.Fatalf("UnmarshalText() = %q, want %q", s.String(), "92")
	}

	// Failed unmarshal leaves the receiver unchanged.
	if err := s.UnmarshalText([]byte("9x")); err == nil {
		t.Fatal("UnmarshalText(\"9x\") expected error")
	}
	if s.String() != "92" {
		t.Fatalf("receiver mutated by failed unmarshal: %q", s.String())
	}
}
