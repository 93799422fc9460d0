package grade_test

import (
	"fmt"

	"github.com/porogan/braggsim/grade"
)

// ExampleBuild builds a 5-step graded layer at 40 % mean porosity and
// prints the resulting sub-layer porosities.
func ExampleBuild() {
	p, err := grade.Build(5, 1, 0.125, 0.40, 50)
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	for i, phi := range p.Porosities {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%.4f", phi)
	}
	fmt.Printf("\nmean %.2f over %.0f nm\n", p.MeanPorosity(), p.TotalThickness())
	// Output:
	// 0.2472 0.4944 0.5168 0.4944 0.2472
	// mean 0.40 over 50 nm
}
