package assign_test

import (
	"fmt"

	"github.com/katalvlaran/opsearch/assign"
	"github.com/katalvlaran/opsearch/operator"
)

// ExampleGenerate lists every assignment of two slots over {+, *}.
func ExampleGenerate() {
	all, _ := assign.Generate(2, operator.Basic())
	for _, a := range all {
		fmt.Println(a)
	}
	// Output:
	// + +
	// + *
	// * +
	// * *
}

// ExampleIterator walks the same space lazily and stops early.
func ExampleIterator() {
	it, _ := assign.NewIterator(3, operator.Extended())
	for it.Next() {
		if it.Index() == 4 {
			fmt.Println(it.Index(), it.Assignment())

			break
		}
	}
	// Output:
	// 4 + * *
}
