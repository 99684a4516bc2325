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
	"strings"

	"github.com/lassandro/lc3enc/pkg/encoding"
)

// TokenStream is the unconsumed remainder of a token sequence. Taking tokens
// shrinks it from the front.
type TokenStream struct {
	tokens []Token
	last   Cursor
}

func NewTokenStream(tokens []Token) *TokenStream {
	return &TokenStream{tokens: tokens}
}

func (ts *TokenStream) Len() int {
	return len(ts.tokens)
}

// Peek returns the next token without consuming it. The stream must not be
// empty.
func (ts *TokenStream) Peek() Token {
	return ts.tokens[0]
}

func (ts *TokenStream) Next() (Token, bool) {
	if len(ts.tokens) == 0 {
		return Token{}, false
	}

	return ts.Take(1)[0], true
}

// Take consumes and returns the next n tokens. The stream must hold at
// least n.
func (ts *TokenStream) Take(n int) []Token {
	taken := ts.tokens[:n:n]
	ts.tokens = ts.tokens[n:]

	if n > 0 {
		ts.last = taken[n-1].Position
	}

	return taken
}

func ParseRegister(token Token) (uint8, error) {
	ident := token.Value

	if len(ident) != 2 ||
		(ident[0] != 'r' && ident[0] != 'R') ||
		ident[1] < '0' ||
		ident[1] > '7' {
		return 0, &InvalidRegisterError{token.Position, token.Value}
	}

	return ident[1] - '0', nil
}

// Parses a literal for a two's complement field. Hex literals give the raw
// field bits and are sign extended from the field width.
func parseSigned(token Token, bits LiteralType) (int64, error) {
	if encoding.IsHex(token.Value) {
		result, err := encoding.DecodeHex(token.Value)

		if err != nil {
			return 0, &InvalidImmediateError{token.Position, token.Value}
		}

		if !encoding.FitsUnsigned(int64(result), uint(bits)) {
			return 0, &OffsetOutOfRangeError{
				token.Position, 0, int64(1)<<bits - 1, int64(result),
			}
		}

		return int64(int16(encoding.SignExtend(result, uint16(bits)))), nil
	}

	result, err := encoding.DecodeInt(token.Value)

	if err != nil {
		return 0, &InvalidImmediateError{token.Position, token.Value}
	}

	if !encoding.FitsSigned(result, uint(bits)) {
		limit := int64(1) << (bits - 1)

		return 0, &OffsetOutOfRangeError{
			token.Position, -limit, limit - 1, result,
		}
	}

	return result, nil
}

// Parses a PC-relative literal that may also be written in decimal as the
// unsigned field value. Such values wrap into the negative half.
func parseWrapped(token Token, bits LiteralType) (int64, error) {
	if encoding.IsHex(token.Value) {
		return parseSigned(token, bits)
	}

	result, err := encoding.DecodeInt(token.Value)

	if err != nil {
		return 0, &InvalidImmediateError{token.Position, token.Value}
	}

	if !encoding.FitsSigned(result, uint(bits)) &&
		!encoding.FitsUnsigned(result, uint(bits)) {
		return 0, &OffsetOutOfRangeError{
			token.Position, -(int64(1) << (bits - 1)), int64(1)<<bits - 1, result,
		}
	}

	field := encoding.Mask(result, uint(bits))

	return int64(int16(encoding.SignExtend(field, uint16(bits)))), nil
}

func parseUnsigned(token Token, bits LiteralType) (int64, error) {
	var result int64

	if encoding.IsHex(token.Value) {
		value, err := encoding.DecodeHex(token.Value)

		if err != nil {
			return 0, &InvalidImmediateError{token.Position, token.Value}
		}

		result = int64(value)
	} else {
		value, err := encoding.DecodeInt(token.Value)

		if err != nil {
			return 0, &InvalidImmediateError{token.Position, token.Value}
		}

		result = value
	}

	if !encoding.FitsUnsigned(result, uint(bits)) {
		return 0, &OffsetOutOfRangeError{
			token.Position, 0, int64(1)<<bits - 1, result,
		}
	}

	return result, nil
}

// Result of parsing an ADD/AND source operand
type sourceOperand struct {
	register bool
	value    int64
}

type production func(Token) (sourceOperand, error)

func registerSource(token Token) (sourceOperand, error) {
	reg, err := ParseRegister(token)

	if err != nil {
		return sourceOperand{}, err
	}

	return sourceOperand{register: true, value: int64(reg)}, nil
}

func immediateSource(bits LiteralType) production {
	return func(token Token) (sourceOperand, error) {
		imm, err := parseSigned(token, bits)

		if _, ok := err.(*OffsetOutOfRangeError); ok {
			return sourceOperand{}, &InvalidImmediateError{token.Position, token.Value}
		} else if err != nil {
			return sourceOperand{}, err
		}

		return sourceOperand{register: false, value: imm}, nil
	}
}

// Tries first, and only if it fails tries second. The error of second is
// the one reported.
func either(first, second production) production {
	return func(token Token) (sourceOperand, error) {
		if result, err := first(token); err == nil {
			return result, nil
		}

		return second(token)
	}
}

var parseSource = either(registerSource, immediateSource(LITERAL_IMM5))

func parseCondition(token Token) uint8 {
	var flags uint8

	if strings.ContainsRune(token.Value, 'n') {
		flags |= FLAG_NEG
	}

	if strings.ContainsRune(token.Value, 'z') {
		flags |= FLAG_ZERO
	}

	if strings.ContainsRune(token.Value, 'p') {
		flags |= FLAG_POS
	}

	return flags
}

func parseRegisters(tokens []Token) ([]uint8, error) {
	result := make([]uint8, len(tokens))

	for i := range tokens {
		reg, err := ParseRegister(tokens[i])

		if err != nil {
			return nil, err
		}

		result[i] = reg
	}

	return result, nil
}

// ParseOperands consumes the operands of m from tokens. On success exactly
// m.Arity() tokens are consumed, except for a BR whose stream holds only its
// offset, in which case the condition is taken as empty.
func ParseOperands(m Mnemonic, tokens *TokenStream) (Operands, error) {
	if !m.valid() {
		return nil, &UnknownMnemonicError{tokens.last, m.String()}
	}

	count := m.Arity()

	if m == MNEMONIC_BR && tokens.Len() == 1 {
		count = 1
	}

	if tokens.Len() < count {
		return nil, &InsufficientOperandsError{
			tokens.last, m.Arity(), tokens.Len(),
		}
	}

	args := tokens.Take(count)

	switch m {
	// ADD  |0001    |DR   |SR1  |0|00 |SR2   | Register  addition
	// ADD  |0001    |DR   |SR1  |1|imm5      | Immediate addition
	// AND  |0101    |DR   |SR1  |0|00 |SR2   | Register  bitwise
	// AND  |0101    |DR   |SR1  |1|imm5      | Immediate bitwise
	case MNEMONIC_ADD, MNEMONIC_AND:
		regs, err := parseRegisters(args[:2])

		if err != nil {
			return nil, err
		}

		source, err := parseSource(args[2])

		if err != nil {
			return nil, err
		}

		if source.register {
			return RegisterOperands{regs[0], regs[1], uint8(source.value)}, nil
		}

		return ImmediateOperands{regs[0], regs[1], int8(source.value)}, nil

	// BR   |0000    |N|Z|P|PCoffset9         | Conditional branch
	case MNEMONIC_BR:
		var flags uint8

		if len(args) == 2 {
			flags = parseCondition(args[0])
		}

		offset, err := parseSigned(args[len(args)-1], LITERAL_PCOFFSET9)

		if err != nil {
			return nil, err
		}

		return BranchOperands{flags, int16(offset)}, nil

	// JMP  |1100    |000  |BaseR|000000      | Jump
	// JSRR |0100    |0|00 |BaseR|000000      | Jump to subroutine register
	case MNEMONIC_JMP, MNEMONIC_JSRR:
		reg, err := ParseRegister(args[0])

		if err != nil {
			return nil, err
		}

		return BaseOperands{reg}, nil

	// JSR  |0100    |1|PCoffset11            | Jump to subroutine
	case MNEMONIC_JSR:
		offset, err := parseWrapped(args[0], LITERAL_PCOFFSET11)

		if err != nil {
			return nil, err
		}

		return SubroutineOperands{int16(offset)}, nil

	// LD   |0010    |DR   |PCoffset9         | Load
	// LDI  |1010    |DR   |PCoffset9         | Load indirect
	// LEA  |1110    |DR   |PCoffset9         | Load effective address
	// ST   |0011    |SR   |PCoffset9         | Store
	// STI  |1011    |SR   |PCoffset9         | Store indirect
	case MNEMONIC_LD,
		MNEMONIC_LDI,
		MNEMONIC_LEA,
		MNEMONIC_ST,
		MNEMONIC_STI:
		reg, err := ParseRegister(args[0])

		if err != nil {
			return nil, err
		}

		offset, err := parseSigned(args[1], LITERAL_PCOFFSET9)

		if err != nil {
			return nil, err
		}

		return PCRelativeOperands{reg, int16(offset)}, nil

	// LDR  |0110    |DR   |BaseR|offset6     | Load base+offset
	// STR  |0111    |SR   |BaseR|offset6     | Store base+offset
	case MNEMONIC_LDR, MNEMONIC_STR:
		regs, err := parseRegisters(args[:2])

		if err != nil {
			return nil, err
		}

		offset, err := parseSigned(args[2], LITERAL_OFFSET6)

		if err != nil {
			return nil, err
		}

		return BaseOffsetOperands{regs[0], regs[1], int8(offset)}, nil

	// NOT  |1001    |DR   |SR   |1|11111     | Bitwise complement
	case MNEMONIC_NOT:
		regs, err := parseRegisters(args)

		if err != nil {
			return nil, err
		}

		return NotOperands{regs[0], regs[1]}, nil

	case MNEMONIC_RET:
		return ReturnOperands{}, nil

	case MNEMONIC_RTI:
		return InterruptReturnOperands{}, nil

	// TRAP |1111    |0000   |trapvect8       | System call
	case MNEMONIC_TRAP:
		vector, err := parseUnsigned(args[0], LITERAL_TRAPVEC8)

		if err != nil {
			return nil, err
		}

		return TrapOperands{uint8(vector)}, nil
	}

	return nil, &UnknownMnemonicError{tokens.last, m.String()}
}

// Parse consumes one instruction, keyword and operands, from tokens.
func Parse(tokens *TokenStream) (Mnemonic, Operands, error) {
	keyword, ok := tokens.Next()

	if !ok {
		return MNEMONIC_INVALID, nil, &InsufficientOperandsError{
			tokens.last, 1, 0,
		}
	}

	m, err := classify(keyword)

	if err != nil {
		return MNEMONIC_INVALID, nil, err
	}

	operands, err := ParseOperands(m, tokens)

	if err != nil {
		return MNEMONIC_INVALID, nil, err
	}

	return m, operands, nil
}
