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

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lassandro/lc3enc/pkg/assembler"
	"github.com/lassandro/lc3enc/pkg/disassembler"
)

var keepgoingvar bool
var strictvar bool
var annotatevar bool
var canonicalvar bool
var formatvar string
var workersvar int
var outvar string

// Returned once diagnostics have already been logged
var errFailed = errors.New("assembly failed")

var colorize = isTerminal(os.Stderr.Fd())

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}

var rootCmd = &cobra.Command{
	Use:   "lc3enc [flags] [filename]",
	Short: "Encodes LC-3 assembly into 16-bit machine words",
	Long: `Lc3enc translates LC-3 assembly, one instruction per line, into the
machine word for each line and prints them as a listing.

Operands are numeric: PC-relative offsets, immediates and trap vectors are
written as decimal (5, #-3) or hexadecimal (x1F, 0x25) literals. Labels and
assembler directives are not supported. Text after a ';' is ignored.

The source is read from filename, or from standard input when it is piped.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          lc3enc,
}

func init() {
	flags := rootCmd.Flags()

	flags.BoolVarP(
		&keepgoingvar, "keep-going", "k", false,
		"Report every malformed line instead of stopping at the first one",
	)
	flags.BoolVar(
		&strictvar, "strict", true,
		"Reject lines with operands left over after the instruction",
	)
	flags.BoolVar(
		&annotatevar, "annotate", true,
		"Follow each word with the source line it was encoded from",
	)
	flags.BoolVar(
		&canonicalvar, "canonical", false,
		"Annotate with the disassembled instruction instead of the source",
	)
	flags.StringVarP(
		&formatvar, "format", "f", "bin",
		"Word format, one of 'bin' or 'hex'",
	)
	flags.IntVarP(
		&workersvar, "workers", "j", 1,
		"Number of lines encoded in parallel, 0 for no limit",
	)
	flags.StringVarP(
		&outvar, "out", "o", "",
		"Write the listing to this file instead of standard output",
	)
}

func paint(s string, code string) string {
	if !colorize {
		return s
	}

	return "\033[" + code + "m" + s + "\033[0m"
}

func openInput(args []string) (io.Reader, string, func(), error) {
	if len(args) == 1 {
		file, err := os.Open(args[0])

		if err != nil {
			return nil, "", nil, errors.Wrap(err, "open source")
		}

		filename := filepath.Base(file.Name())

		if stat, err := file.Stat(); err != nil {
			file.Close()
			return nil, "", nil, errors.Wrap(err, "stat source")
		} else if stat.IsDir() {
			file.Close()
			return nil, "", nil, errors.Errorf(
				"%s is not a valid LC3 assembly file", filename,
			)
		}

		return file, filename, func() { file.Close() }, nil
	}

	if stat, err := os.Stdin.Stat(); err == nil &&
		stat.Mode()&os.ModeCharDevice == 0 {
		return os.Stdin, "<stdin>", func() {}, nil
	}

	return nil, "", nil, errors.New("no input file and nothing piped to stdin")
}

func splitLines(source string) []string {
	var lines []string

	scanner := bufio.NewScanner(strings.NewReader(source))

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines
}

func report(errs []error, lines []string) {
	for _, err := range errs {
		tokenErr, ok := errors.Cause(err).(assembler.TokenError)

		if !ok {
			log.Println(err)
			continue
		}

		cursor := tokenErr.GetPosition()

		if cursor.Line < 1 || cursor.Line > len(lines) || cursor.Column < 1 {
			log.Println(err)
			continue
		}

		underline := strings.Repeat(" ", cursor.Column-1) + "^"

		if cursor.Size > 1 {
			underline += strings.Repeat("~", int(cursor.Size)-1)
		}

		log.Printf(
			"%s\n%s\n%s",
			err,
			lines[cursor.Line-1],
			paint(underline, "31"),
		)
	}
}

func writeListing(output io.Writer, result []assembler.Instruction) error {
	writer := bufio.NewWriter(output)

	for _, inst := range result {
		var word string

		switch formatvar {
		case "hex":
			word = fmt.Sprintf("%04x", inst.Word)
		default:
			word = inst.String()
		}

		if canonicalvar {
			word += " // " + disassembler.Disassemble(inst.Word)
		} else if annotatevar {
			word += " // " + strings.ToUpper(strings.TrimSpace(inst.Source))
		}

		if _, err := fmt.Fprintln(writer, word); err != nil {
			return errors.Wrap(err, "write listing")
		}
	}

	return errors.Wrap(writer.Flush(), "write listing")
}

func lc3enc(cmd *cobra.Command, args []string) error {
	if formatvar != "bin" && formatvar != "hex" {
		return errors.Errorf("unknown format '%s'", formatvar)
	}

	input, filename, closer, err := openInput(args)

	if err != nil {
		return err
	}

	defer closer()

	log.SetPrefix(paint(filename+":", "1"))

	data, err := io.ReadAll(input)

	if err != nil {
		return errors.Wrap(err, "read source")
	}

	source := string(data)
	lines := splitLines(source)

	opts := assembler.Options{
		Strict:  strictvar,
		Workers: workersvar,
	}

	if keepgoingvar {
		opts.Policy = assembler.POLICY_SKIP
	}

	var result []assembler.Instruction
	var errs []error

	if workersvar == 1 {
		result, errs = assembler.AssembleLC3Source(strings.NewReader(source), opts)
	} else {
		result, errs = assembler.AssembleConcurrent(context.Background(), lines, opts)
	}

	if len(errs) > 0 {
		report(errs, lines)

		if opts.Policy == assembler.POLICY_HALT {
			return errFailed
		}
	}

	output := io.Writer(os.Stdout)

	if outvar != "" {
		file, err := os.Create(outvar)

		if err != nil {
			return errors.Wrap(err, "create listing")
		}

		defer file.Close()
		output = file
	}

	if err := writeListing(output, result); err != nil {
		return err
	}

	if len(errs) > 0 {
		return errFailed
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if err != errFailed {
			log.Println(err)
		}

		os.Exit(1)
	}
}
