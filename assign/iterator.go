package assign

import (
	"fmt"

	"github.com/katalvlaran/opsearch/operator"
)

// Iterator walks all kⁿ assignments lazily as a mixed-radix counter in
// base k, rightmost slot fastest. It holds O(n) state and produces one
// assignment per call to Next.
//
// Usage:
//
//	it, err := assign.NewIterator(n, alpha)
//	for it.Next() {
//		use(it.Assignment())
//	}
//
// An Iterator is not safe for concurrent use.
type Iterator struct {
	kinds   []operator.Kind
	digits  []int
	buf     Assignment
	index   uint64
	started bool
	done    bool
}

// NewIterator returns an iterator positioned before the first assignment.
//
// Errors: ErrNegativeSlots, operator.ErrEmptyAlphabet.
func NewIterator(n int, a operator.Alphabet) (*Iterator, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSlots, n)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	return &Iterator{
		kinds:  a.Kinds(),
		digits: make([]int, n),
		buf:    make(Assignment, n),
	}, nil
}

// Next advances to the next assignment and reports whether one exists.
// After it returns false the iterator stays exhausted until Reset.
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}
	if !it.started {
		it.started = true
		for i := range it.buf {
			it.digits[i] = 0
			it.buf[i] = it.kinds[0]
		}

		return true
	}

	k := len(it.kinds)
	for i := len(it.digits) - 1; i >= 0; i-- {
		it.digits[i]++
		if it.digits[i] < k {
			it.buf[i] = it.kinds[it.digits[i]]
			it.index++

			return true
		}
		// carry into the slot on the left
		it.digits[i] = 0
		it.buf[i] = it.kinds[0]
	}
	it.done = true

	return false
}

// Assignment returns the current assignment. The slice is reused by the
// next call to Next; Clone it to retain it.
func (it *Iterator) Assignment() Assignment { return it.buf }

// Index returns the zero-based ordinal of the current assignment.
func (it *Iterator) Index() uint64 { return it.index }

// Slots returns n, the length of every produced assignment.
func (it *Iterator) Slots() int { return len(it.buf) }

// Total returns kⁿ, the number of assignments a full pass yields.
func (it *Iterator) Total() (uint64, error) { return Count(len(it.buf), len(it.kinds)) }

// Reset rewinds the iterator so the next call to Next yields the first
// assignment again.
func (it *Iterator) Reset() {
	it.index = 0
	it.started = false
	it.done = false
}
