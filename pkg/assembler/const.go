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

const (
	LITERAL_IMM5       LiteralType = 5
	LITERAL_OFFSET6    LiteralType = 6
	LITERAL_TRAPVEC8   LiteralType = 8
	LITERAL_PCOFFSET9  LiteralType = 9
	LITERAL_PCOFFSET11 LiteralType = 11
)

const (
	MNEMONIC_INVALID Mnemonic = iota
	MNEMONIC_ADD
	MNEMONIC_AND
	MNEMONIC_BR
	MNEMONIC_JMP
	MNEMONIC_JSR
	MNEMONIC_JSRR
	MNEMONIC_LD
	MNEMONIC_LDI
	MNEMONIC_LDR
	MNEMONIC_LEA
	MNEMONIC_NOT
	MNEMONIC_RET
	MNEMONIC_RTI
	MNEMONIC_ST
	MNEMONIC_STI
	MNEMONIC_STR
	MNEMONIC_TRAP
)

const (
	OP_BR   uint16 = 0b0000
	OP_ADD  uint16 = 0b0001
	OP_LD   uint16 = 0b0010
	OP_ST   uint16 = 0b0011
	OP_JSR  uint16 = 0b0100
	OP_AND  uint16 = 0b0101
	OP_LDR  uint16 = 0b0110
	OP_STR  uint16 = 0b0111
	OP_RTI  uint16 = 0b1000
	OP_NOT  uint16 = 0b1001
	OP_LDI  uint16 = 0b1010
	OP_STI  uint16 = 0b1011
	OP_JMP  uint16 = 0b1100
	OP_LEA  uint16 = 0b1110
	OP_TRAP uint16 = 0b1111

	// Reserved
	OP_RES uint16 = 0b1101
)

// Branch condition bits, as laid out in the N|Z|P field
const (
	FLAG_POS  uint8 = 1 << 0
	FLAG_ZERO uint8 = 1 << 1
	FLAG_NEG  uint8 = 1 << 2
)

const (
	// Stop at the first malformed line and discard everything encoded so far
	POLICY_HALT Policy = iota

	// Report malformed lines and keep encoding the rest
	POLICY_SKIP
)
