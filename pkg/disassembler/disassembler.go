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

// Package disassembler renders machine words back into assembly source.
//
// Only words in the exact shape the assembler emits are rendered as
// instructions. Everything else, including words whose padding bits are
// set and the reserved opcode, is rendered as a .fill of the raw value.
// Assembling any output other than a .fill reproduces the input word.
package disassembler

import (
	"fmt"

	"github.com/lassandro/lc3enc/pkg/assembler"
	"github.com/lassandro/lc3enc/pkg/encoding"
)

func signed(value uint16, bits uint16) int16 {
	return int16(encoding.SignExtend(value&((1<<bits)-1), bits))
}

func fill(instruction uint16) string {
	return fmt.Sprintf(".fill x%04x", instruction)
}

func condition(flags uint16) string {
	var result string

	if flags&uint16(assembler.FLAG_NEG) != 0 {
		result += "n"
	}

	if flags&uint16(assembler.FLAG_ZERO) != 0 {
		result += "z"
	}

	if flags&uint16(assembler.FLAG_POS) != 0 {
		result += "p"
	}

	return result
}

func Disassemble(instruction uint16) string {
	opcode := instruction >> 12

	switch opcode {
	// ADD  |0001    |DR   |SR1  |0|00 |SR2   | Register  addition
	// ADD  |0001    |DR   |SR1  |1|imm5      | Immediate addition
	// AND  |0101    |DR   |SR1  |0|00 |SR2   | Register  bitwise
	// AND  |0101    |DR   |SR1  |1|imm5      | Immediate bitwise
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case assembler.OP_ADD, assembler.OP_AND:
		name := assembler.MNEMONIC_ADD.String()

		if opcode == assembler.OP_AND {
			name = assembler.MNEMONIC_AND.String()
		}

		dest := (instruction >> 9) & 0x7
		src1 := (instruction >> 6) & 0x7

		if (instruction>>5)&0x1 == 1 {
			return fmt.Sprintf(
				"%s r%d, r%d, #%d", name, dest, src1, signed(instruction, 5),
			)
		}

		if (instruction>>3)&0x3 != 0 {
			return fill(instruction)
		}

		return fmt.Sprintf(
			"%s r%d, r%d, r%d", name, dest, src1, instruction&0x7,
		)

	// BR   |0000    |N|Z|P|PCoffset9         | Conditional branch
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case assembler.OP_BR:
		flags := (instruction >> 9) & 0x7
		offset := signed(instruction, 9)

		if flags == 0 {
			return fmt.Sprintf("br #%d", offset)
		}

		return fmt.Sprintf("br %s, #%d", condition(flags), offset)

	// JMP  |1100    |000  |BaseR|000000      | Jump
	// RET  |1100    |000  |111  |000000      | Return
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case assembler.OP_JMP:
		if (instruction>>9)&0x7 != 0 || instruction&0x3F != 0 {
			return fill(instruction)
		}

		src := (instruction >> 6) & 0x7

		if src == 7 {
			return assembler.MNEMONIC_RET.String()
		}

		return fmt.Sprintf("jmp r%d", src)

	// JSR  |0100    |1|PCoffset11            | Jump to subroutine
	// JSRR |0100    |0|00 |BaseR|000000      | Jump to subroutine register
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case assembler.OP_JSR:
		if (instruction>>11)&0x1 == 1 {
			return fmt.Sprintf("jsr #%d", signed(instruction, 11))
		}

		if (instruction>>9)&0x3 != 0 || instruction&0x3F != 0 {
			return fill(instruction)
		}

		return fmt.Sprintf("jsrr r%d", (instruction>>6)&0x7)

	// LD   |0010    |DR   |PCoffset9         | Load
	// LDI  |1010    |DR   |PCoffset9         | Load indirect
	// LEA  |1110    |DR   |PCoffset9         | Load effective address
	// ST   |0011    |SR   |PCoffset9         | Store
	// STI  |1011    |SR   |PCoffset9         | Store indirect
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case assembler.OP_LD,
		assembler.OP_LDI,
		assembler.OP_LEA,
		assembler.OP_ST,
		assembler.OP_STI:
		var name string

		switch opcode {
		case assembler.OP_LD:
			name = assembler.MNEMONIC_LD.String()
		case assembler.OP_LDI:
			name = assembler.MNEMONIC_LDI.String()
		case assembler.OP_LEA:
			name = assembler.MNEMONIC_LEA.String()
		case assembler.OP_ST:
			name = assembler.MNEMONIC_ST.String()
		case assembler.OP_STI:
			name = assembler.MNEMONIC_STI.String()
		}

		return fmt.Sprintf(
			"%s r%d, #%d",
			name,
			(instruction>>9)&0x7,
			signed(instruction, 9),
		)

	// LDR  |0110    |DR   |BaseR|offset6     | Load base+offset
	// STR  |0111    |SR   |BaseR|offset6     | Store base+offset
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case assembler.OP_LDR, assembler.OP_STR:
		name := assembler.MNEMONIC_LDR.String()

		if opcode == assembler.OP_STR {
			name = assembler.MNEMONIC_STR.String()
		}

		return fmt.Sprintf(
			"%s r%d, r%d, #%d",
			name,
			(instruction>>9)&0x7,
			(instruction>>6)&0x7,
			signed(instruction, 6),
		)

	// NOT  |1001    |DR   |SR   |1|11111     | Bitwise complement
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case assembler.OP_NOT:
		if instruction&0x3F != 0x3F {
			return fill(instruction)
		}

		return fmt.Sprintf(
			"not r%d, r%d", (instruction>>9)&0x7, (instruction>>6)&0x7,
		)

	// RTI  |1000    |000000000000            | Return from interrupt
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case assembler.OP_RTI:
		if instruction&0x0FFF != 0 {
			return fill(instruction)
		}

		return assembler.MNEMONIC_RTI.String()

	// TRAP |1111    |0000   |trapvect8       | System call
	// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case assembler.OP_TRAP:
		if (instruction>>8)&0xF != 0 {
			return fill(instruction)
		}

		return fmt.Sprintf("trap x%02x", instruction&0xFF)
	}

	// RES  |1101    |                        | Reserved (illegal)
	return fill(instruction)
}
