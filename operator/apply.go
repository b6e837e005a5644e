package operator

import (
	"fmt"
	"math/bits"
)

// Apply evaluates k on (acc, x).
//
// Returns ErrOverflow (wrapped with the operands) when the exact result
// cannot be represented in uint64, and ErrUnknownOperator for a Kind
// outside the enumeration.
//
// Complexity: O(1) for Add and Multiply, O(digits(x)) for Concat.
func Apply(k Kind, acc, x uint64) (uint64, error) {
	var (
		v  uint64
		ok bool
	)
	switch k {
	case Add:
		v, ok = add(acc, x)
	case Multiply:
		v, ok = mul(acc, x)
	case Concat:
		v, ok = concat(acc, x)
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownOperator, uint8(k))
	}
	if !ok {
		return 0, fmt.Errorf("%w: %d %s %d", ErrOverflow, acc, k.Symbol(), x)
	}

	return v, nil
}

// Concatenate returns the integer whose decimal representation is the digits
// of a followed by the digits of b. Leading zeros vanish as in ordinary
// decimal parsing, so Concatenate(0, 1) == 1 and Concatenate(1, 0) == 10.
func Concatenate(a, b uint64) (uint64, error) {
	return Apply(Concat, a, b)
}

// add returns a+b and false on carry out of 64 bits.
func add(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)

	return sum, carry == 0
}

// mul returns a*b and false when the high word of the product is non-zero.
func mul(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)

	return lo, hi == 0
}

// concat computes a·10^digits(b) + b.
func concat(a, b uint64) (uint64, bool) {
	if a == 0 {
		// "0" followed by b parses back to b.
		return b, true
	}
	shift, ok := pow10(digits(b))
	if !ok {
		return 0, false
	}
	head, ok := mul(a, shift)
	if !ok {
		return 0, false
	}

	return add(head, b)
}

// digits returns the number of decimal digits of x; zero has one digit.
func digits(x uint64) int {
	n := 1
	for x >= 10 {
		x /= 10
		n++
	}

	return n
}

// pow10 returns 10^n and false if it does not fit in uint64.
func pow10(n int) (uint64, bool) {
	p := uint64(1)
	var ok bool
	for i := 0; i < n; i++ {
		if p, ok = mul(p, 10); !ok {
			return 0, false
		}
	}

	return p, true
}
