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

package assembler_test

import (
	"reflect"
	"testing"

	"github.com/lassandro/lc3enc/pkg/assembler"
)

func values(tokens []assembler.Token) []string {
	result := make([]string, 0, len(tokens))

	for _, token := range tokens {
		result = append(result, token.Value)
	}

	return result
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		Name   string
		Input  string
		Output []string
	}{
		{"Spaces", "add r1 r2 r3", []string{"add", "r1", "r2", "r3"}},
		{"Commas", "add r1,r2,r3", []string{"add", "r1", "r2", "r3"}},
		{"Mixed", "  add\tr1 ,, r2 ,\n r3 ", []string{"add", "r1", "r2", "r3"}},
		{"Empty", "", []string{}},
		{"Delimiters", " , \t,", []string{}},
		{"No Quoting", `"a b";c`, []string{`"a`, `b";c`}},
		{"Unicode Space", "ret\u00a0rti", []string{"ret", "rti"}},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			have := values(assembler.Tokenize(test.Input, 1))

			if !reflect.DeepEqual(have, test.Output) {
				t.Fatalf("Token mismatch\nwant:%q\nhave:%q", test.Output, have)
			}
		})
	}
}

func TestTokenizerPosition(t *testing.T) {
	tokens := assembler.Tokenize("  ld r1, -3", 7)

	want := []assembler.Cursor{
		{Line: 7, Column: 3, Byte: 2, Size: 2},
		{Line: 7, Column: 6, Byte: 5, Size: 2},
		{Line: 7, Column: 10, Byte: 9, Size: 2},
	}

	if len(tokens) != len(want) {
		t.Fatalf("Token count mismatch\nwant:%d\nhave:%d", len(want), len(tokens))
	}

	for i := range want {
		if tokens[i].Position != want[i] {
			t.Fatalf(
				"Token position mismatch (%s)\nwant:%+v\nhave:%+v",
				tokens[i].Value,
				want[i],
				tokens[i].Position,
			)
		}
	}
}

func TestTokenizerSinglePass(t *testing.T) {
	tokenizer := assembler.NewTokenizer("jmp r1", 1)

	for _, want := range []string{"jmp", "r1"} {
		token, ok := tokenizer.Next()

		if !ok || token.Value != want {
			t.Fatalf("Token mismatch\nwant:%s\nhave:%s (%t)", want, token.Value, ok)
		}
	}

	for i := 0; i < 2; i++ {
		if token, ok := tokenizer.Next(); ok {
			t.Fatalf("Expected exhausted tokenizer\nhave:%s", token.Value)
		}
	}
}
