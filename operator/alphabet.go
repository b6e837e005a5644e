package operator

import (
	"fmt"
	"strings"
)

// Alphabet is an ordered set of distinct operator kinds. The zero value is
// empty and rejected by every search entry point.
type Alphabet struct {
	kinds []Kind
}

// NewAlphabet validates kinds and returns them as an Alphabet.
// Order is preserved; it only affects which witness a search reports first.
//
// Errors: ErrEmptyAlphabet, ErrUnknownOperator, ErrDuplicateOperator.
func NewAlphabet(kinds ...Kind) (Alphabet, error) {
	if len(kinds) == 0 {
		return Alphabet{}, ErrEmptyAlphabet
	}
	var seen [numKinds]bool
	out := make([]Kind, 0, len(kinds))
	for _, k := range kinds {
		if !k.Valid() {
			return Alphabet{}, fmt.Errorf("%w: %d", ErrUnknownOperator, uint8(k))
		}
		if seen[k] {
			return Alphabet{}, fmt.Errorf("%w: %s", ErrDuplicateOperator, k)
		}
		seen[k] = true
		out = append(out, k)
	}

	return Alphabet{kinds: out}, nil
}

// MustAlphabet is NewAlphabet that panics on error. Intended for
// package-level presets and tests.
func MustAlphabet(kinds ...Kind) Alphabet {
	a, err := NewAlphabet(kinds...)
	if err != nil {
		panic(err)
	}

	return a
}

// ParseAlphabet builds an Alphabet from a comma-separated list of names,
// e.g. "add,mul,concat". Empty items are ignored.
func ParseAlphabet(list string) (Alphabet, error) {
	return ParseNames(strings.Split(list, ","))
}

// ParseNames builds an Alphabet from individual operator names.
func ParseNames(names []string) (Alphabet, error) {
	kinds := make([]Kind, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		k, err := ParseKind(name)
		if err != nil {
			return Alphabet{}, err
		}
		kinds = append(kinds, k)
	}

	return NewAlphabet(kinds...)
}

// Basic returns {Add, Multiply}.
func Basic() Alphabet { return MustAlphabet(Add, Multiply) }

// Extended returns {Add, Multiply, Concat}.
func Extended() Alphabet { return MustAlphabet(Add, Multiply, Concat) }

// Len returns the number of kinds (k).
func (a Alphabet) Len() int { return len(a.kinds) }

// At returns the i-th kind. It panics if i is out of range, like a slice.
func (a Alphabet) At(i int) Kind { return a.kinds[i] }

// Kinds returns a copy of the members in order.
func (a Alphabet) Kinds() []Kind {
	out := make([]Kind, len(a.kinds))
	copy(out, a.kinds)

	return out
}

// Contains reports whether k is a member.
func (a Alphabet) Contains(k Kind) bool {
	for _, m := range a.kinds {
		if m == k {
			return true
		}
	}

	return false
}

// Validate returns ErrEmptyAlphabet for the zero value.
func (a Alphabet) Validate() error {
	if len(a.kinds) == 0 {
		return ErrEmptyAlphabet
	}

	return nil
}

// String renders the alphabet as "add,mul,concat".
func (a Alphabet) String() string {
	names := make([]string, len(a.kinds))
	for i, k := range a.kinds {
		names[i] = k.String()
	}

	return strings.Join(names, ",")
}
