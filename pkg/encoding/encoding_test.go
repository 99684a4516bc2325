// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package encoding_test

import (
	"testing"

	"github.com/lassandro/lc3enc/pkg/encoding"
)

func TestDecodeHex(t *testing.T) {
	for input, want := range map[string]uint16{
		"x0":     0x0,
		"x1F":    0x1F,
		"0x1f":   0x1F,
		"XFFFF":  0xFFFF,
		"0X3000": 0x3000,
	} {
		have, err := encoding.DecodeHex(input)

		if err != nil {
			t.Fatalf("Unexpected error decoding %q: %s", input, err)
		}

		if have != want {
			t.Fatalf(
				"Hex decoding mismatch (%s)\n\twant:%#04x\n\thave:%#04x",
				input,
				want,
				have,
			)
		}
	}

	for _, input := range []string{"", "x", "1x2", "xG", "x10000", "12", "0x1_F", "x_1F", "0x+1"} {
		if _, err := encoding.DecodeHex(input); err == nil {
			t.Fatalf("Expected error decoding %q", input)
		}
	}
}

func TestDecodeInt(t *testing.T) {
	for input, want := range map[string]int64{
		"0":      0,
		"#0":     0,
		"15":     15,
		"#15":    15,
		"-16":    -16,
		"#-16":   -16,
		"+7":     7,
		"100000": 100000,
	} {
		have, err := encoding.DecodeInt(input)

		if err != nil {
			t.Fatalf("Unexpected error decoding %q: %s", input, err)
		}

		if have != want {
			t.Fatalf(
				"Int decoding mismatch (%s)\n\twant:%d\n\thave:%d",
				input,
				want,
				have,
			)
		}
	}

	for _, input := range []string{"", "#", "r1", "1.5", "--1", "##1"} {
		if _, err := encoding.DecodeInt(input); err == nil {
			t.Fatalf("Expected error decoding %q", input)
		}
	}
}

func TestFits(t *testing.T) {
	signed := []struct {
		Value int64
		Bits  uint
		Fits  bool
	}{
		{15, 5, true},
		{-16, 5, true},
		{16, 5, false},
		{-17, 5, false},
		{255, 9, true},
		{-256, 9, true},
		{256, 9, false},
		{1023, 11, true},
		{-1024, 11, true},
		{1024, 11, false},
		{2047, 11, false},
	}

	for _, test := range signed {
		if have := encoding.FitsSigned(test.Value, test.Bits); have != test.Fits {
			t.Fatalf(
				"FitsSigned(%d, %d)\n\twant:%t\n\thave:%t",
				test.Value,
				test.Bits,
				test.Fits,
				have,
			)
		}
	}

	unsigned := []struct {
		Value int64
		Bits  uint
		Fits  bool
	}{
		{0, 8, true},
		{255, 8, true},
		{256, 8, false},
		{-1, 8, false},
		{0x1FF, 9, true},
		{0x200, 9, false},
	}

	for _, test := range unsigned {
		if have := encoding.FitsUnsigned(test.Value, test.Bits); have != test.Fits {
			t.Fatalf(
				"FitsUnsigned(%d, %d)\n\twant:%t\n\thave:%t",
				test.Value,
				test.Bits,
				test.Fits,
				have,
			)
		}
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		Value int64
		Bits  uint
		Want  uint16
	}{
		{-1, 5, 0b11111},
		{5, 5, 0b00101},
		{-16, 5, 0b10000},
		{-1024, 11, 0b100_0000_0000},
		{1023, 11, 0b011_1111_1111},
		{-1, 9, 0x1FF},
		{-32, 6, 0b100000},
		{-1, 16, 0xFFFF},
	}

	for _, test := range tests {
		if have := encoding.Mask(test.Value, test.Bits); have != test.Want {
			t.Fatalf(
				"Mask(%d, %d)\n\twant:%#04x\n\thave:%#04x",
				test.Value,
				test.Bits,
				test.Want,
				have,
			)
		}
	}
}

func TestSignExtend(t *testing.T) {
	tests := []struct {
		Value uint16
		Bits  uint16
		Want  uint16
	}{
		{0b11111, 5, 0xFFFF},
		{0b01111, 5, 0x000F},
		{0b10000, 5, 0xFFF0},
		{0x1FF, 9, 0xFFFF},
		{0x0FF, 9, 0x00FF},
		{0x400, 11, 0xFC00},
	}

	for _, test := range tests {
		if have := encoding.SignExtend(test.Value, test.Bits); have != test.Want {
			t.Fatalf(
				"SignExtend(%#04x, %d)\n\twant:%#04x\n\thave:%#04x",
				test.Value,
				test.Bits,
				test.Want,
				have,
			)
		}
	}
}
