package functerm_test

import (
	"fmt"

	"github.com/symbolica/functerm"
)

func Example() {
	// f(x) = x^2
	f := functerm.NewFunction("x")
	x, _ := f.Variable("x")
	f.Body = functerm.Calculation(x, functerm.Constant(2), functerm.Power)

	for i := 0; i <= 4; i++ {
		y, _ := f.SolveArgs(float64(i))
		fmt.Printf("f(%v) = %v\n", float64(i), y)
	}

	// Output:
	// f(0) = 0
	// f(1) = 1
	// f(2) = 4
	// f(3) = 9
	// f(4) = 16
}

func ExampleFunction_SolveFor() {
	// area(w, h) = w * h
	f := functerm.NewFunction("w", "h")
	w, _ := f.Variable("w")
	h, _ := f.Variable("h")
	f.Body = functerm.Calculation(w, h, functerm.Multiply)

	area, _ := f.SolveFor(map[string]float64{"w": 3, "h": 4.5})
	fmt.Println(f, "at w=3, h=4.5 is", area)

	// Output:
	// f(w, h) = (w * h) at w=3, h=4.5 is 13.5
}
