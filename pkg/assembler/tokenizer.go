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
	"unicode"
	"unicode/utf8"
)

// Tokenizer splits a line into runs of characters delimited by whitespace
// and commas. It makes a single pass over its input.
type Tokenizer struct {
	input  string
	line   int
	pos    int
	column int
}

func NewTokenizer(input string, line int) *Tokenizer {
	return &Tokenizer{input: input, line: line}
}

// Next returns the next token, or false once the input is exhausted.
func (tk *Tokenizer) Next() (Token, bool) {
	start := -1
	startColumn := 0

	for tk.pos < len(tk.input) {
		char, size := utf8.DecodeRuneInString(tk.input[tk.pos:])

		if unicode.IsSpace(char) || char == ',' {
			if start >= 0 {
				break
			}
		} else if start < 0 {
			start = tk.pos
			startColumn = tk.column
		}

		tk.pos += size
		tk.column++
	}

	if start < 0 {
		return Token{}, false
	}

	value := tk.input[start:tk.pos]

	return Token{
		Value: value,
		Position: Cursor{
			Line:   tk.line,
			Column: startColumn + 1,
			Byte:   int64(start),
			Size:   int64(tk.column - startColumn),
		},
	}, true
}

func Tokenize(input string, line int) []Token {
	tokens := make([]Token, 0, 4)
	tokenizer := NewTokenizer(input, line)

	for {
		token, ok := tokenizer.Next()

		if !ok {
			return tokens
		}

		tokens = append(tokens, token)
	}
}
