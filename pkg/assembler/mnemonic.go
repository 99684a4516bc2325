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

type mnemonicInfo struct {
	keyword string
	opcode  uint16
	arity   int
}

// Indexed by Mnemonic. JMP/RET and JSR/JSRR share opcodes but are distinct
// entries with their own arity.
var mnemonics = [...]mnemonicInfo{
	MNEMONIC_INVALID: {"<invalid>", OP_RES, 0},
	MNEMONIC_ADD:     {"add", OP_ADD, 3},
	MNEMONIC_AND:     {"and", OP_AND, 3},
	MNEMONIC_BR:      {"br", OP_BR, 2},
	MNEMONIC_JMP:     {"jmp", OP_JMP, 1},
	MNEMONIC_JSR:     {"jsr", OP_JSR, 1},
	MNEMONIC_JSRR:    {"jsrr", OP_JSR, 1},
	MNEMONIC_LD:      {"ld", OP_LD, 2},
	MNEMONIC_LDI:     {"ldi", OP_LDI, 2},
	MNEMONIC_LDR:     {"ldr", OP_LDR, 3},
	MNEMONIC_LEA:     {"lea", OP_LEA, 2},
	MNEMONIC_NOT:     {"not", OP_NOT, 2},
	MNEMONIC_RET:     {"ret", OP_JMP, 0},
	MNEMONIC_RTI:     {"rti", OP_RTI, 0},
	MNEMONIC_ST:      {"st", OP_ST, 2},
	MNEMONIC_STI:     {"sti", OP_STI, 2},
	MNEMONIC_STR:     {"str", OP_STR, 3},
	MNEMONIC_TRAP:    {"trap", OP_TRAP, 1},
}

var keywords = func() map[string]Mnemonic {
	result := make(map[string]Mnemonic, len(mnemonics)-1)

	for m := MNEMONIC_ADD; int(m) < len(mnemonics); m++ {
		result[mnemonics[m].keyword] = m
	}

	return result
}()

// Classify resolves a lowercase keyword to its Mnemonic. Matching is case
// sensitive; callers lowercase their input first.
func Classify(keyword string) (Mnemonic, error) {
	return classify(Token{Value: keyword})
}

func classify(token Token) (Mnemonic, error) {
	if m, exists := keywords[token.Value]; exists {
		return m, nil
	}

	return MNEMONIC_INVALID, &UnknownMnemonicError{token.Position, token.Value}
}

func (m Mnemonic) valid() bool {
	return m > MNEMONIC_INVALID && int(m) < len(mnemonics)
}

// Arity is the number of operand tokens the instruction consumes.
func (m Mnemonic) Arity() int {
	if !m.valid() {
		return 0
	}

	return mnemonics[m].arity
}

func (m Mnemonic) Opcode() uint16 {
	if !m.valid() {
		return OP_RES
	}

	return mnemonics[m].opcode
}

func (m Mnemonic) String() string {
	if !m.valid() {
		return mnemonics[MNEMONIC_INVALID].keyword
	}

	return mnemonics[m].keyword
}
