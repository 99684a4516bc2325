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

package assembler

import (
	"github.com/lassandro/lc3enc/pkg/encoding"
)

// Encode packs a parsed instruction into its machine word. Operand fields
// are range checked by the parser; the masking here only places them.
func Encode(m Mnemonic, operands Operands) uint16 {
	var scratch uint16 = m.Opcode() << 12

	if operands != nil {
		scratch |= operands.payload() & 0x0FFF
	}

	return scratch
}

// Payload |DR   |SR1  |0|00 |SR2   |
// ------- [ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (ops RegisterOperands) payload() uint16 {
	return uint16(ops.DR&0x7)<<9 |
		uint16(ops.SR1&0x7)<<6 |
		uint16(ops.SR2&0x7)
}

// Payload |DR   |SR1  |1|imm5      |
// ------- [ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (ops ImmediateOperands) payload() uint16 {
	return uint16(ops.DR&0x7)<<9 |
		uint16(ops.SR1&0x7)<<6 |
		1<<5 |
		encoding.Mask(int64(ops.Imm5), uint(LITERAL_IMM5))
}

// Payload |N|Z|P|PCoffset9         |
// ------- [ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (ops BranchOperands) payload() uint16 {
	return uint16(ops.Flags&0x7)<<9 |
		encoding.Mask(int64(ops.PCOffset9), uint(LITERAL_PCOFFSET9))
}

// Payload |000  |BaseR|000000      |
// ------- [ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (ops BaseOperands) payload() uint16 {
	return uint16(ops.BaseR&0x7) << 6
}

// Payload |1|PCoffset11            |
// ------- [ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (ops SubroutineOperands) payload() uint16 {
	return 1<<11 |
		encoding.Mask(int64(ops.PCOffset11), uint(LITERAL_PCOFFSET11))
}

// Payload |DR   |PCoffset9         |
// ------- [ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (ops PCRelativeOperands) payload() uint16 {
	return uint16(ops.Reg&0x7)<<9 |
		encoding.Mask(int64(ops.PCOffset9), uint(LITERAL_PCOFFSET9))
}

// Payload |DR   |BaseR|offset6     |
// ------- [ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (ops BaseOffsetOperands) payload() uint16 {
	return uint16(ops.Reg&0x7)<<9 |
		uint16(ops.BaseR&0x7)<<6 |
		encoding.Mask(int64(ops.Offset6), uint(LITERAL_OFFSET6))
}

// Payload |DR   |SR   |1|11111     |
// ------- [ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (ops NotOperands) payload() uint16 {
	return uint16(ops.DR&0x7)<<9 |
		uint16(ops.SR&0x7)<<6 |
		0x3F
}

// Payload |000  |111  |000000      |
// ------- [ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (ops ReturnOperands) payload() uint16 {
	return 0b000_111_000000
}

// Payload |000000000000            |
// ------- [ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (ops InterruptReturnOperands) payload() uint16 {
	return 0
}

// Payload |0000   |trapvect8       |
// ------- [ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (ops TrapOperands) payload() uint16 {
	return uint16(ops.Vector)
}
