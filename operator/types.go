package operator

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for operator handling.
var (
	// ErrOverflow indicates the result of an operation does not fit in uint64.
	ErrOverflow = errors.New("operator: result overflows uint64")

	// ErrUnknownOperator is returned for a Kind or name outside the enumeration.
	ErrUnknownOperator = errors.New("operator: unknown operator")

	// ErrEmptyAlphabet is returned when an alphabet has no members.
	ErrEmptyAlphabet = errors.New("operator: alphabet must contain at least one operator")

	// ErrDuplicateOperator is returned when an alphabet lists a kind twice.
	ErrDuplicateOperator = errors.New("operator: duplicate operator in alphabet")
)

// Kind is one member of the closed operator enumeration.
//
//   - Add      - a + b
//   - Multiply - a * b
//   - Concat   - decimal concatenation, a‖b
type Kind uint8

const (
	// Add sums the accumulator and the operand.
	Add Kind = iota

	// Multiply multiplies the accumulator by the operand.
	Multiply

	// Concat appends the operand's decimal digits to the accumulator's.
	Concat

	// numKinds is the size of the enumeration; keep it last.
	numKinds
)

// String returns the lower-case name of k ("add", "mul", "concat").
func (k Kind) String() string {
	switch k {
	case Add:
		return "add"
	case Multiply:
		return "mul"
	case Concat:
		return "concat"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Symbol returns the infix symbol used when rendering an expression.
func (k Kind) Symbol() string {
	switch k {
	case Add:
		return "+"
	case Multiply:
		return "*"
	case Concat:
		return "||"
	default:
		return "?"
	}
}

// Valid reports whether k belongs to the enumeration.
func (k Kind) Valid() bool { return k < numKinds }

// Kinds returns every operator kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, int(numKinds))
	for k := Kind(0); k < numKinds; k++ {
		out = append(out, k)
	}

	return out
}

// ParseKind maps a name or symbol to its Kind. Matching is case-insensitive
// and ignores surrounding whitespace.
//
//	"add", "+"                  → Add
//	"mul", "multiply", "*"      → Multiply
//	"concat", "cat", "||"       → Concat
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "add", "+":
		return Add, nil
	case "mul", "multiply", "*":
		return Multiply, nil
	case "concat", "cat", "||":
		return Concat, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, name)
	}
}
