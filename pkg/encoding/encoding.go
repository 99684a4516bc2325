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

package encoding

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Reports whether s is written in one of the hexidecimal literal forms
func IsHex(s string) bool {
	return strings.ContainsAny(s, "xX")
}

// Decodes a hexidecimal string in the formats: 0xFFFF, xFFFF, 0xFF, xFF
func DecodeHex(s string) (uint16, error) {
	digits := s

	switch strings.IndexAny(s, "xX") {
	case 0:
		digits = s[1:]
	case 1:
		if s[0] != '0' {
			return 0, errors.Errorf("invalid hex string %q", s)
		}

		digits = s[2:]
	default:
		return 0, errors.Errorf("invalid hex string %q", s)
	}

	result, err := strconv.ParseUint(digits, 16, 16)

	if err != nil {
		return 0, err
	}

	return uint16(result), nil
}

// Decodes a base-10 string in the formats: #123, 123, #-123, -123
func DecodeInt(s string) (int64, error) {
	if i := strings.Index(s, "#"); i == 0 {
		s = s[1:]
	}

	return strconv.ParseInt(s, 10, 64)
}

// Reports whether value is representable as a two's complement integer of
// the given width
func FitsSigned(value int64, bitcount uint) bool {
	limit := int64(1) << (bitcount - 1)

	return value >= -limit && value < limit
}

func FitsUnsigned(value int64, bitcount uint) bool {
	return value >= 0 && value < int64(1)<<bitcount
}

// Truncates value to its low bitcount bits
func Mask(value int64, bitcount uint) uint16 {
	return uint16(value) & ((uint16(1) << bitcount) - 1)
}

func SignExtend(value uint16, bitcount uint16) uint16 {
	if (value>>(bitcount-1))&0x1 == 1 {
		value |= (0xFFFF << bitcount)
	}

	return value
}
