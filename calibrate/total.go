package calibrate

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/opsearch/operator"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// TotalOfSatisfiable returns the sum of the targets of every satisfiable
// equation in eqs. Unsatisfiable equations contribute nothing; duplicates
// are counted as often as they occur.
//
// With WithWorkers(n > 1) equations are searched on up to n goroutines.
// Each goroutine writes only its own result slot, so no locking is needed
// and the sum is formed after all searches finish.
//
// Errors: the first error of any equation (ErrNoOperands for a malformed
// one), ErrOptionViolation, ErrSumOverflow, or the context error.
//
// Complexity: O(Σ kⁿ·n) over the equations, divided across workers.
func TotalOfSatisfiable(eqs []Equation, a operator.Alphabet, opts ...Option) (uint64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	if err = a.Validate(); err != nil {
		return 0, err
	}

	hits := make([]bool, len(eqs))
	if o.Workers <= 1 {
		err = totalSequential(eqs, a, &o, hits)
	} else {
		err = totalParallel(eqs, a, &o, hits)
	}
	if err != nil {
		return 0, err
	}

	var (
		sum, carry uint64
		matched    int
	)
	for i, ok := range hits {
		if !ok {
			continue
		}
		matched++
		if sum, carry = bits.Add64(sum, eqs[i].target, 0); carry != 0 {
			return 0, ErrSumOverflow
		}
	}
	o.Logger.Debug("calibration total",
		zap.Int("equations", len(eqs)),
		zap.Int("satisfiable", matched),
		zap.Uint64("total", sum),
		zap.Stringer("operators", a),
		zap.Stringer("strategy", o.Strategy),
	)

	return sum, nil
}

// totalSequential searches eqs in order on the calling goroutine.
func totalSequential(eqs []Equation, a operator.Alphabet, o *Options, hits []bool) error {
	for i, eq := range eqs {
		w, ok, err := search(eq.target, eq.operands, a, o)
		if err != nil {
			return fmt.Errorf("equation %d (%s): %w", i, eq, err)
		}
		logOutcome(o.Logger, eq, w, ok)
		hits[i] = ok
	}

	return nil
}

// totalParallel fans eqs out over an errgroup limited to o.Workers.
// The first failing equation cancels the rest.
func totalParallel(eqs []Equation, a operator.Alphabet, o *Options, hits []bool) error {
	g, gctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Workers)

	local := *o
	local.Ctx = gctx
	for i := range eqs {
		i := i
		g.Go(func() error {
			eq := eqs[i]
			w, ok, err := search(eq.target, eq.operands, a, &local)
			if err != nil {
				return fmt.Errorf("equation %d (%s): %w", i, eq, err)
			}
			logOutcome(local.Logger, eq, w, ok)
			hits[i] = ok

			return nil
		})
	}

	return g.Wait()
}
