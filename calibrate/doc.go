// Package calibrate decides whether an equation's operands can be combined,
// strictly left to right, into its target value, and totals the targets of
// every equation for which that is possible.
//
// 🚀 What is calibration?
//
//	An equation "3267: 81 40 27" is satisfiable when some choice of
//	operators between the operands folds to the target:
//	  81 + 40 = 121, 121 * 27 = 3267 ✓
//	Evaluation is a plain left fold; there is no precedence and no
//	parenthesization.
//
// ✨ Key features:
//   - Exhaustive strategy: walks all kⁿ assignments lazily, stops at the
//     first match, and never concludes "false" before the last one
//   - Pruned strategy: depth-first prefix search that cuts prefixes which
//     already overshoot the target (same answers, fewer folds)
//   - overflow in a candidate is a non-match, never a failure of the search
//   - TotalOfSatisfiable can fan equations out over an errgroup
//   - hooks (WithOnAssignment) and an injected zap logger for observation
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/opsearch/calibrate"
//
//	ok, err := calibrate.IsSatisfiable(190, []uint64{10, 19}, operator.Basic())
//
//	eqs := []calibrate.Equation{eq1, eq2}
//	sum, err := calibrate.TotalOfSatisfiable(eqs, operator.Extended(),
//		calibrate.WithWorkers(8))
//
// Performance:
//
//   - Time:   O(kⁿ·n) per equation (Exhaustive), n = len(operands)-1
//   - Memory: O(n) per equation
//
// The exponential kⁿ term is the known scaling boundary of the engine;
// WithMaxAssignments lets callers refuse equations above a chosen size.
package calibrate
