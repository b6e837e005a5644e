// Package opsearch is an equation operator search engine: given a target
// and an ordered list of operands, it decides whether some choice of
// operators between consecutive operands, applied strictly left to right,
// reproduces the target.
//
// 🚀 What is in the box?
//
//	• operator/  - the closed operator enumeration (Add, Multiply, Concat),
//	               overflow-checked arithmetic and validated alphabets
//	• assign/    - the operator assignment generator: recursive Generate and
//	               a lazy, restartable mixed-radix Iterator over kⁿ sequences
//	• calibrate/ - Equation, Fold, IsSatisfiable, Solve, TotalOfSatisfiable
//	               with exhaustive or pruned search and errgroup fan-out
//	• input/     - parser for "target: a b c" lines
//	• config/    - YAML configuration with environment overrides
//	• cmd/opsearch - cobra CLI: solve, check, count, config
//
// Quick example:
//
//	3267: 81 40 27  →  81 + 40 = 121, 121 * 27 = 3267 ✓
//
// There is no operator precedence and no parenthesization: the operands
// are folded in order. The search space is kⁿ for k operators and n gaps,
// which is the engine's known scaling boundary.
//
//	go get github.com/katalvlaran/opsearch
package opsearch
