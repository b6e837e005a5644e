package calibrate

import (
	"github.com/katalvlaran/opsearch/assign"
	"github.com/katalvlaran/opsearch/operator"
)

// Fold evaluates operands under assignment a strictly left to right:
//
//	acc = operands[0]
//	acc = a[i-1](acc, operands[i])   for i = 1..len(operands)-1
//
// There is no precedence: Fold([a,b,c], [Add,Multiply]) is (a+b)*c.
//
// Errors:
//   - ErrNoOperands             - operands is empty.
//   - ErrArityMismatch          - len(a) != len(operands)-1.
//   - operator.ErrOverflow      - some step does not fit in uint64.
//
// Complexity: O(n) time, O(1) memory.
func Fold(operands []uint64, a assign.Assignment) (uint64, error) {
	if err := checkArity(operands, a); err != nil {
		return 0, err
	}
	acc := operands[0]
	var err error
	for i, k := range a {
		if acc, err = operator.Apply(k, acc, operands[i+1]); err != nil {
			return 0, err
		}
	}

	return acc, nil
}
