package assign

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/opsearch/operator"
)

// Count returns kⁿ, the number of assignments of n slots over k operators.
//
// Errors:
//   - ErrNegativeSlots       - n < 0.
//   - operator.ErrEmptyAlphabet - k < 1.
//   - ErrTooManyAssignments  - kⁿ does not fit in uint64.
//
// Complexity: O(n).
func Count(n, k int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeSlots, n)
	}
	if k < 1 {
		return 0, operator.ErrEmptyAlphabet
	}
	total := uint64(1)
	for i := 0; i < n; i++ {
		hi, lo := bits.Mul64(total, uint64(k))
		if hi != 0 {
			return 0, fmt.Errorf("%w: %d^%d overflows uint64", ErrTooManyAssignments, k, n)
		}
		total = lo
	}

	return total, nil
}
