package calibrate

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/opsearch/assign"
	"go.uber.org/zap"
)

// Strategy selects how the assignment space of one equation is searched.
//
//   - Exhaustive - walk every assignment in iterator order; a negative
//     answer is only given after all kⁿ have been folded.
//   - Pruned     - depth-first over prefixes, abandoning a prefix once its
//     accumulator exceeds the target and no remaining operand is zero.
//     Every shipped operator is non-decreasing for operands ≥ 1, so the
//     answer is identical to Exhaustive.
type Strategy int

const (
	// Exhaustive folds complete assignments one at a time.
	Exhaustive Strategy = iota

	// Pruned searches prefixes and cuts overshooting branches.
	Pruned
)

// String returns "exhaustive" or "pruned".
func (s Strategy) String() string {
	switch s {
	case Exhaustive:
		return "exhaustive"
	case Pruned:
		return "pruned"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "exhaustive" or "pruned" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "exhaustive", "":
		return Exhaustive, nil
	case "pruned":
		return Pruned, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
	}
}

// Option configures a search via functional arguments. An invalid Option
// is recorded and surfaced as ErrOptionViolation by the entry point.
type Option func(*Options)

// Options holds the tunables and hooks of a search.
type Options struct {
	// Ctx is checked before each equation is searched.
	Ctx context.Context

	// Strategy picks Exhaustive (default) or Pruned.
	Strategy Strategy

	// Workers is the number of goroutines TotalOfSatisfiable uses (default 1).
	Workers int

	// MaxAssignments, if > 0, rejects equations whose kⁿ exceeds it.
	MaxAssignments uint64

	// OnAssignment is called once for every complete assignment that is
	// folded. With Workers > 1 it runs concurrently and must be safe for
	// that. The slice is only valid during the call.
	OnAssignment func(a assign.Assignment)

	// Logger receives one debug entry per equation.
	Logger *zap.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - Exhaustive strategy, one worker, no assignment limit
//   - a no-op OnAssignment hook and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Strategy:       Exhaustive,
		Workers:        1,
		MaxAssignments: 0,
		OnAssignment:   func(assign.Assignment) {},
		Logger:         zap.NewNop(),
		err:            nil,
	}
}

// WithContext sets a context for cancellation between equations.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy selects the search strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case Exhaustive, Pruned:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
		}
	}
}

// WithWorkers sets the parallelism of TotalOfSatisfiable.
//
//	n >= 1: use n goroutines
//	n <= 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.Workers = n
	}
}

// WithMaxAssignments rejects equations with more than limit assignments
// (assign.ErrTooManyAssignments). Zero disables the limit.
func WithMaxAssignments(limit uint64) Option {
	return func(o *Options) {
		o.MaxAssignments = limit
	}
}

// WithOnAssignment registers a callback run for each folded assignment.
func WithOnAssignment(fn func(a assign.Assignment)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAssignment = fn
		}
	}
}

// WithLogger injects a zap logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}
