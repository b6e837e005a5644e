// Package input reads calibration equations from their text form:
//
//	190: 10 19
//	3267: 81 40 27
//
// One equation per line, the target followed by a colon and one or more
// whitespace-separated operands. Blank lines and lines starting with '#'
// are skipped.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/opsearch/calibrate"
)

// ErrSyntax is wrapped by every parse failure together with the 1-based
// line number.
var ErrSyntax = errors.New("input: syntax error")

// maxLine bounds a single input line (1 MiB).
const maxLine = 1 << 20

// Parse reads every equation from r.
func Parse(r io.Reader) ([]calibrate.Equation, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)

	var (
		eqs  []calibrate.Equation
		line int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		eq, err := ParseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		eqs = append(eqs, eq)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read: %w", err)
	}

	return eqs, nil
}

// ParseString is Parse over a string.
func ParseString(s string) ([]calibrate.Equation, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile opens path and parses its contents.
func ParseFile(path string) ([]calibrate.Equation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: open %s: %w", path, err)
	}
	defer f.Close()

	eqs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return eqs, nil
}

// ParseLine parses a single "target: a b c" line.
func ParseLine(text string) (calibrate.Equation, error) {
	head, tail, ok := strings.Cut(text, ":")
	if !ok {
		return calibrate.Equation{}, fmt.Errorf("%w: missing ':' in %q", ErrSyntax, text)
	}
	target, err := parseValue(head)
	if err != nil {
		return calibrate.Equation{}, err
	}

	fields := strings.Fields(tail)
	if len(fields) == 0 {
		return calibrate.Equation{}, fmt.Errorf("%w: %w", ErrSyntax, calibrate.ErrNoOperands)
	}
	operands := make([]uint64, len(fields))
	for i, f := range fields {
		if operands[i], err = parseValue(f); err != nil {
			return calibrate.Equation{}, err
		}
	}

	return calibrate.NewEquation(target, operands...)
}

// parseValue parses a non-negative decimal that fits in uint64.
func parseValue(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	return v, nil
}
