package calibrate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/opsearch/assign"
	"github.com/katalvlaran/opsearch/operator"
	"go.uber.org/zap"
)

// IsSatisfiable reports whether some assignment over alphabet a folds
// operands to target.
//
// A single operand is satisfiable iff it equals target; no assignment is
// examined. Otherwise the configured Strategy searches the kⁿ assignments
// and stops at the first match. A candidate that overflows uint64 is a
// non-match and the search continues.
//
// Errors: ErrNoOperands, operator.ErrEmptyAlphabet, ErrOptionViolation,
// assign.ErrTooManyAssignments (WithMaxAssignments), or the context error.
func IsSatisfiable(target uint64, operands []uint64, a operator.Alphabet, opts ...Option) (bool, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return false, err
	}
	_, ok, err := search(target, operands, a, &o)

	return ok, err
}

// Solve is IsSatisfiable for an Equation that also returns the first
// satisfying assignment found (nil when there is none). Which witness is
// found first depends on the alphabet order and the Strategy.
func Solve(eq Equation, a operator.Alphabet, opts ...Option) (assign.Assignment, bool, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, false, err
	}
	w, ok, err := search(eq.target, eq.operands, a, &o)
	if err != nil {
		return nil, false, err
	}
	logOutcome(o.Logger, eq, w, ok)

	return w, ok, nil
}

// search validates inputs and dispatches to the selected strategy.
func search(target uint64, operands []uint64, a operator.Alphabet, o *Options) (assign.Assignment, bool, error) {
	if len(operands) == 0 {
		return nil, false, ErrNoOperands
	}
	if err := a.Validate(); err != nil {
		return nil, false, err
	}
	if err := o.Ctx.Err(); err != nil {
		return nil, false, err
	}
	if len(operands) == 1 {
		if operands[0] == target {
			return assign.Assignment{}, true, nil
		}

		return nil, false, nil
	}

	slots := len(operands) - 1
	if o.MaxAssignments > 0 {
		total, err := assign.Count(slots, a.Len())
		if err != nil {
			return nil, false, err
		}
		if total > o.MaxAssignments {
			return nil, false, fmt.Errorf("%w: %d^%d = %d exceeds limit %d",
				assign.ErrTooManyAssignments, a.Len(), slots, total, o.MaxAssignments)
		}
	}

	switch o.Strategy {
	case Pruned:
		w, ok := searchPruned(target, operands, a, o.OnAssignment)

		return w, ok, nil
	default:
		return searchExhaustive(target, operands, a, o.OnAssignment)
	}
}

// searchExhaustive folds every assignment produced by the lazy iterator.
// It returns false only after all kⁿ assignments have been folded.
func searchExhaustive(target uint64, operands []uint64, a operator.Alphabet, hook func(assign.Assignment)) (assign.Assignment, bool, error) {
	it, err := assign.NewIterator(len(operands)-1, a)
	if err != nil {
		return nil, false, err
	}
	for it.Next() {
		cand := it.Assignment()
		hook(cand)
		v, err := Fold(operands, cand)
		if err != nil {
			if errors.Is(err, operator.ErrOverflow) {
				continue
			}

			return nil, false, err
		}
		if v == target {
			return cand.Clone(), true, nil
		}
	}

	return nil, false, nil
}

// pruner carries the state of one depth-first prefix search.
type pruner struct {
	target   uint64
	operands []uint64
	kinds    []operator.Kind
	// zeroFrom[i] reports whether some operand at index ≥ i is zero.
	zeroFrom []bool
	path     assign.Assignment
	hook     func(assign.Assignment)
}

// searchPruned explores prefixes depth-first. A prefix whose accumulator
// exceeds target is abandoned unless a zero operand remains, since every
// operator is non-decreasing in the accumulator for operands ≥ 1. Prefixes
// that overflow are abandoned too. The hook sees only complete assignments
// that are actually reached.
func searchPruned(target uint64, operands []uint64, a operator.Alphabet, hook func(assign.Assignment)) (assign.Assignment, bool) {
	n := len(operands)
	p := &pruner{
		target:   target,
		operands: operands,
		kinds:    a.Kinds(),
		zeroFrom: make([]bool, n+1),
		path:     make(assign.Assignment, n-1),
		hook:     hook,
	}
	for i := n - 1; i >= 0; i-- {
		p.zeroFrom[i] = p.zeroFrom[i+1] || operands[i] == 0
	}
	if p.walk(1, operands[0]) {
		return p.path.Clone(), true
	}

	return nil, false
}

// walk extends the prefix ending before operand i whose value is acc.
func (p *pruner) walk(i int, acc uint64) bool {
	if i == len(p.operands) {
		p.hook(p.path)

		return acc == p.target
	}
	if acc > p.target && !p.zeroFrom[i] {
		return false
	}
	for _, k := range p.kinds {
		v, err := operator.Apply(k, acc, p.operands[i])
		if err != nil {
			continue
		}
		p.path[i-1] = k
		if p.walk(i+1, v) {
			return true
		}
	}

	return false
}

// logOutcome writes the per-equation debug entry.
func logOutcome(l *zap.Logger, eq Equation, w assign.Assignment, ok bool) {
	if ce := l.Check(zap.DebugLevel, "equation checked"); ce != nil {
		fields := []zap.Field{
			zap.Uint64("target", eq.target),
			zap.Int("operands", len(eq.operands)),
			zap.Bool("satisfiable", ok),
		}
		if ok {
			if expr, err := eq.Render(w); err == nil {
				fields = append(fields, zap.String("witness", expr))
			}
		}
		ce.Write(fields...)
	}
}
