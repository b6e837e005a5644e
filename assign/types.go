package assign

import (
	"errors"
	"strings"

	"github.com/katalvlaran/opsearch/operator"
)

var (
	// ErrNegativeSlots is returned when a negative sequence length is requested.
	ErrNegativeSlots = errors.New("assign: number of slots must be non-negative")

	// ErrTooManyAssignments is returned when kⁿ exceeds the representable
	// (or configured) limit.
	ErrTooManyAssignments = errors.New("assign: too many assignments")
)

// Assignment is one operator per gap between consecutive operands:
// Assignment[i] combines the accumulator with operand i+1.
type Assignment []operator.Kind

// Clone returns an independent copy of a.
func (a Assignment) Clone() Assignment {
	if a == nil {
		return nil
	}
	out := make(Assignment, len(a))
	copy(out, a)

	return out
}

// String renders the assignment with infix symbols, e.g. "+ * ||".
func (a Assignment) String() string {
	parts := make([]string, len(a))
	for i, k := range a {
		parts[i] = k.Symbol()
	}

	return strings.Join(parts, " ")
}
