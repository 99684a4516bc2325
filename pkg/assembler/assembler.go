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
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Returned by AssembleLine for lines holding no instruction
var ErrEmptyLine = errors.New("empty line")

func stripComment(line string) string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		return line[:i]
	}

	return line
}

// AssembleTokens encodes instructions from tokens until the stream is
// exhausted. Line boundaries play no part; each instruction takes exactly
// the tokens its arity asks for.
func AssembleTokens(tokens *TokenStream) ([]Instruction, error) {
	var result []Instruction

	for tokens.Len() > 0 {
		line := tokens.Peek().Position.Line

		m, operands, err := Parse(tokens)

		if err != nil {
			return nil, err
		}

		result = append(result, Instruction{
			Mnemonic: m,
			Operands: operands,
			Word:     Encode(m, operands),
			Line:     line,
		})
	}

	return result, nil
}

// AssembleLine encodes a single line of source. The line is lowercased and
// anything after a ';' is ignored.
func AssembleLine(line string, lineno int, opts Options) (Instruction, error) {
	source := strings.ToLower(stripComment(line))
	tokens := NewTokenStream(Tokenize(source, lineno))

	if tokens.Len() == 0 {
		return Instruction{}, ErrEmptyLine
	}

	m, operands, err := Parse(tokens)

	if err != nil {
		return Instruction{}, err
	}

	if opts.Strict && tokens.Len() > 0 {
		extra := tokens.Peek()

		return Instruction{}, &TrailingOperandsError{
			extra.Position, extra.Value,
		}
	}

	return Instruction{
		Mnemonic: m,
		Operands: operands,
		Word:     Encode(m, operands),
		Source:   line,
		Line:     lineno,
	}, nil
}

// AssembleLC3Source encodes input line by line, in order. Under POLICY_HALT
// the first error ends the run and no instructions are returned.
func AssembleLC3Source(input io.Reader, opts Options) (result []Instruction, errs []error) {
	scanner := bufio.NewScanner(input)

	for lineno := 1; scanner.Scan(); lineno++ {
		inst, err := AssembleLine(scanner.Text(), lineno, opts)

		if err == ErrEmptyLine {
			continue
		}

		if err != nil {
			errs = append(errs, err)

			if opts.Policy == POLICY_HALT {
				return nil, errs
			}

			continue
		}

		result = append(result, inst)
	}

	if err := scanner.Err(); err != nil {
		errs = append(errs, errors.Wrap(err, "read source"))

		if opts.Policy == POLICY_HALT {
			return nil, errs
		}
	}

	return result, errs
}

// AssembleConcurrent encodes lines in parallel, at most opts.Workers at a
// time. Results keep the order of lines and failures are reported as
// AssembleLC3Source would report them.
func AssembleConcurrent(ctx context.Context, lines []string, opts Options) ([]Instruction, []error) {
	group, groupCtx := errgroup.WithContext(ctx)

	if opts.Workers > 0 {
		group.SetLimit(opts.Workers)
	}

	encoded := make([]*Instruction, len(lines))
	failures := make([]error, len(lines))

	// Lines are handed out in order and always run to completion, so under
	// POLICY_HALT every line before the first failure has been encoded.
	for i, line := range lines {
		if groupCtx.Err() != nil {
			break
		}

		i, line := i, line
		group.Go(func() error {
			inst, err := AssembleLine(line, i+1, opts)

			if err == ErrEmptyLine {
				return nil
			}

			if err != nil {
				failures[i] = err

				if opts.Policy == POLICY_HALT {
					return err
				}

				return nil
			}

			encoded[i] = &inst
			return nil
		})
	}

	// Failures are kept by index in failures
	_ = group.Wait()

	var errs []error

	for _, err := range failures {
		if err == nil {
			continue
		}

		errs = append(errs, err)

		if opts.Policy == POLICY_HALT {
			return nil, errs
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, append(errs, errors.Wrap(err, "assemble"))
	}

	result := make([]Instruction, 0, len(lines))

	for _, inst := range encoded {
		if inst != nil {
			result = append(result, *inst)
		}
	}

	return result, errs
}
