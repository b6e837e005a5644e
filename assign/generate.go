package assign

import (
	"fmt"
	"math"

	"github.com/katalvlaran/opsearch/operator"
)

// Generate returns every assignment of length n over alphabet a.
//
// Algorithm Outline:
//  1. n == 0 → [[]] (one empty sequence).
//  2. prev = Generate(n-1).
//  3. For each p in prev and each kind k in a: emit p ++ [k].
//
// The whole set is materialized; prefer NewIterator when n is large or the
// consumer stops early.
//
// Errors: ErrNegativeSlots, operator.ErrEmptyAlphabet, ErrTooManyAssignments
// (kⁿ larger than an addressable slice).
//
// Complexity: O(n·kⁿ) time and memory.
func Generate(n int, a operator.Alphabet) ([]Assignment, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	total, err := Count(n, a.Len())
	if err != nil {
		return nil, err
	}
	if total > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d sequences cannot be materialized", ErrTooManyAssignments, total)
	}

	return extend(n, a.Kinds()), nil
}

// extend builds all length-n sequences from the length-(n-1) ones.
func extend(n int, kinds []operator.Kind) []Assignment {
	if n == 0 {
		return []Assignment{{}}
	}
	prev := extend(n-1, kinds)
	out := make([]Assignment, 0, len(prev)*len(kinds))
	for _, p := range prev {
		for _, k := range kinds {
			next := make(Assignment, n)
			copy(next, p)
			next[n-1] = k
			out = append(out, next)
		}
	}

	return out
}
