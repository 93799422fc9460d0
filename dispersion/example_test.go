package dispersion_test

import (
	"fmt"

	"github.com/porogan/braggsim/dispersion"
)

// ExampleFromColumns builds a tiny GaN-like table and interpolates
// between two of its samples.
func ExampleFromColumns() {
	tbl, err := dispersion.FromColumns(
		[]float64{300, 400, 500},
		[]float64{2.60, 2.50, 2.42},
	)
	if err != nil {
		fmt.Println("table:", err)
		return
	}
	n, err := tbl.Index(450)
	if err != nil {
		fmt.Println("lookup:", err)
		return
	}
	fmt.Printf("n(450 nm) = %.2f\n", n)
	// Output: n(450 nm) = 2.46
}
