package calibrate_test

import (
	"fmt"

	"github.com/katalvlaran/opsearch/calibrate"
	"github.com/katalvlaran/opsearch/operator"
)

// ExampleIsSatisfiable checks one equation against both shipped alphabets.
func ExampleIsSatisfiable() {
	operands := []uint64{15, 6}
	basic, _ := calibrate.IsSatisfiable(156, operands, operator.Basic())
	extended, _ := calibrate.IsSatisfiable(156, operands, operator.Extended())
	fmt.Println(basic, extended)
	// Output:
	// false true
}

// ExampleSolve prints the first witness found for an equation.
func ExampleSolve() {
	eq := calibrate.MustEquation(7290, 6, 8, 6, 15)
	w, ok, err := calibrate.Solve(eq, operator.Extended())
	if err != nil || !ok {
		fmt.Println("unsatisfiable")

		return
	}
	expr, _ := eq.Render(w)
	fmt.Println(expr)
	// Output:
	// 6 * 8 || 6 * 15
}

// ExampleTotalOfSatisfiable sums the satisfiable targets of a small batch
// on two workers.
func ExampleTotalOfSatisfiable() {
	eqs := []calibrate.Equation{
		calibrate.MustEquation(190, 10, 19),
		calibrate.MustEquation(3267, 81, 40, 27),
		calibrate.MustEquation(83, 17, 5),
		calibrate.MustEquation(292, 11, 6, 16, 20),
	}
	total, err := calibrate.TotalOfSatisfiable(eqs, operator.Basic(), calibrate.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(total)
	// Output:
	// 3749
}
