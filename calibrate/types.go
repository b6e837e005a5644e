package calibrate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/opsearch/assign"
)

// Sentinel errors for calibration.
var (
	// ErrNoOperands is returned for an equation without operands.
	ErrNoOperands = errors.New("calibrate: equation must have at least one operand")

	// ErrArityMismatch is returned by Fold when len(assignment) != len(operands)-1.
	ErrArityMismatch = errors.New("calibrate: assignment length does not match operand gaps")

	// ErrSumOverflow is returned when the total of satisfiable targets overflows uint64.
	ErrSumOverflow = errors.New("calibrate: total of targets overflows uint64")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("calibrate: invalid option supplied")
)

// Equation is an immutable target value with its ordered operands.
// Build it with NewEquation; the zero value has no operands and is rejected
// by every search entry point with ErrNoOperands.
type Equation struct {
	target   uint64
	operands []uint64
}

// NewEquation copies operands into a new Equation.
// Returns ErrNoOperands if operands is empty.
func NewEquation(target uint64, operands ...uint64) (Equation, error) {
	if len(operands) == 0 {
		return Equation{}, ErrNoOperands
	}
	ops := make([]uint64, len(operands))
	copy(ops, operands)

	return Equation{target: target, operands: ops}, nil
}

// MustEquation is NewEquation that panics on error; for tests and fixtures.
func MustEquation(target uint64, operands ...uint64) Equation {
	eq, err := NewEquation(target, operands...)
	if err != nil {
		panic(err)
	}

	return eq
}

// Target returns the value the operands must fold to.
func (e Equation) Target() uint64 { return e.target }

// Operands returns a copy of the operands.
func (e Equation) Operands() []uint64 {
	out := make([]uint64, len(e.operands))
	copy(out, e.operands)

	return out
}

// Slots returns the number of operator gaps, len(operands)-1, or 0 for an
// equation without operands.
func (e Equation) Slots() int {
	if len(e.operands) == 0 {
		return 0
	}

	return len(e.operands) - 1
}

// String renders the equation in its input form, "3267: 81 40 27".
func (e Equation) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(e.target, 10))
	sb.WriteByte(':')
	for _, x := range e.operands {
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatUint(x, 10))
	}

	return sb.String()
}

// Render writes the operands interleaved with the operators of a,
// e.g. "81 + 40 * 27". It returns ErrNoOperands or ErrArityMismatch for
// inconsistent inputs.
func (e Equation) Render(a assign.Assignment) (string, error) {
	if err := checkArity(e.operands, a); err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(e.operands[0], 10))
	for i, k := range a {
		sb.WriteByte(' ')
		sb.WriteString(k.Symbol())
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatUint(e.operands[i+1], 10))
	}

	return sb.String(), nil
}

// checkArity validates the operand/assignment shape shared by Fold and Render.
func checkArity(operands []uint64, a assign.Assignment) error {
	if len(operands) == 0 {
		return ErrNoOperands
	}
	if len(a) != len(operands)-1 {
		return fmt.Errorf("%w: %d operators for %d operands", ErrArityMismatch, len(a), len(operands))
	}

	return nil
}
