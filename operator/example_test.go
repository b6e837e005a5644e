package operator_test

import (
	"fmt"

	"github.com/katalvlaran/opsearch/operator"
)

// ExampleApply shows the three shipped operators on the same operands.
func ExampleApply() {
	for _, k := range operator.Extended().Kinds() {
		v, _ := operator.Apply(k, 12, 34)
		fmt.Printf("12 %s 34 = %d\n", k.Symbol(), v)
	}
	// Output:
	// 12 + 34 = 46
	// 12 * 34 = 408
	// 12 || 34 = 1234
}

// ExampleParseAlphabet parses an alphabet from a flag-style list.
func ExampleParseAlphabet() {
	a, err := operator.ParseAlphabet("add,*")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(a.Len(), a)
	// Output:
	// 2 add,mul
}
