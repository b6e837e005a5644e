// Package operator defines the closed set of binary operators an equation
// can be calibrated with, and the arithmetic each of them performs.
//
// 🚀 What is an operator here?
//
//	A pure function (uint64, uint64) → uint64 applied between a running
//	accumulator and the next operand, strictly left to right:
//	  • Add      - a + b
//	  • Multiply - a · b
//	  • Concat   - decimal digits of a followed by the digits of b (12‖34 = 1234)
//
// ✨ Key features:
//   - Kind is a tagged enum with an exhaustive switch in Apply, no interfaces
//   - overflow is reported as ErrOverflow instead of silently wrapping
//   - Alphabet is a validated, ordered set of distinct kinds
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/opsearch/operator"
//
//	alpha, err := operator.ParseAlphabet("add,mul,concat")
//	v, err := operator.Apply(operator.Concat, 12, 34) // 1234
//
// Performance:
//
//   - Add, Multiply: O(1)
//   - Concat:        O(d) where d is the digit count of the right operand
package operator
