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
	"fmt"
)

type LiteralType uint
type Mnemonic uint
type Policy uint

type Cursor struct {
	Line   int
	Column int
	Byte   int64
	Size   int64
}

type Token struct {
	Value    string
	Position Cursor
}

type Options struct {
	Policy Policy

	// Reject lines with tokens left over after the instruction's operands
	Strict bool

	// Upper bound on lines encoded at once by AssembleConcurrent, 0 means
	// no bound
	Workers int
}

// An encoded source line
type Instruction struct {
	Mnemonic Mnemonic
	Operands Operands
	Word     uint16
	Source   string
	Line     int
}

func (inst Instruction) String() string {
	return fmt.Sprintf("%016b", inst.Word)
}

// Operands is the parsed operand record of one instruction. The concrete
// type identifies the operand shape; the Mnemonic it was parsed for supplies
// the opcode.
type Operands interface {
	payload() uint16
}

// ADD/AND DR, SR1, SR2
type RegisterOperands struct {
	DR  uint8
	SR1 uint8
	SR2 uint8
}

// ADD/AND DR, SR1, imm5
type ImmediateOperands struct {
	DR   uint8
	SR1  uint8
	Imm5 int8
}

// BR[nzp] PCoffset9
type BranchOperands struct {
	Flags     uint8
	PCOffset9 int16
}

// JMP/JSRR BaseR
type BaseOperands struct {
	BaseR uint8
}

// JSR PCoffset11
type SubroutineOperands struct {
	PCOffset11 int16
}

// LD/LDI/LEA DR, PCoffset9 and ST/STI SR, PCoffset9
type PCRelativeOperands struct {
	Reg       uint8
	PCOffset9 int16
}

// LDR DR, BaseR, offset6 and STR SR, BaseR, offset6
type BaseOffsetOperands struct {
	Reg     uint8
	BaseR   uint8
	Offset6 int8
}

type NotOperands struct {
	DR uint8
	SR uint8
}

type ReturnOperands struct{}

type InterruptReturnOperands struct{}

type TrapOperands struct {
	Vector uint8
}

type TokenError interface {
	GetPosition() Cursor
}

type UnknownMnemonicError struct {
	Position Cursor
	Received string
}

func (err *UnknownMnemonicError) GetPosition() Cursor {
	return err.Position
}

func (err *UnknownMnemonicError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unknown mnemonic '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type InsufficientOperandsError struct {
	Position Cursor
	Required int
	Received int
}

func (err *InsufficientOperandsError) GetPosition() Cursor {
	return err.Position
}

func (err *InsufficientOperandsError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid number of arguments\n\twant:%d\n\thave:%d",
		err.Position.Line,
		err.Position.Column,
		err.Required,
		err.Received,
	)
}

type InvalidRegisterError struct {
	Position Cursor
	Received string
}

func (err *InvalidRegisterError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidRegisterError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid register identifier '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type InvalidImmediateError struct {
	Position Cursor
	Received string
}

func (err *InvalidImmediateError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidImmediateError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid numeric literal '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type OffsetOutOfRangeError struct {
	Position Cursor
	Min      int64
	Max      int64
	Received int64
}

func (err *OffsetOutOfRangeError) GetPosition() Cursor {
	return err.Position
}

func (err *OffsetOutOfRangeError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Literal exceeds allowed size\n\twant:[%d, %d]\n\thave:%d",
		err.Position.Line,
		err.Position.Column,
		err.Min,
		err.Max,
		err.Received,
	)
}

type TrailingOperandsError struct {
	Position Cursor
	Received string
}

func (err *TrailingOperandsError) GetPosition() Cursor {
	return err.Position
}

func (err *TrailingOperandsError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unexpected operand '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}
