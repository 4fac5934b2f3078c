package corrtab_test

import (
	"fmt"

	"github.com/katalvlaran/seqtab/corrtab"
)

// ExampleUnstack demonstrates the full pipeline: raw observation columns
// → Pearson correlation matrix → sorted long-form table.
//
// Scenario:
//
//	Two nearly linear measurement series; the single off-diagonal pair
//	surfaces with its correlation ≈ 0.9996.
//
// Complexity: O(N²·M) for the correlation, O(N² log N) for the unstack.
func ExampleUnstack() {
	m, err := corrtab.Correlation(
		[]string{"A", "B"},
		[][]float64{
			{1, 2, 3, 4},
			{1.5, 2.3, 3.2, 4.1},
		},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	tbl, err := corrtab.Unstack(m)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(tbl)
	// Output:
	// col_1  col_2  corr
	// A      B      0.999604
}

// ExampleUnstack_ascending demonstrates surfacing the weakest (most
// negative) relationships first with custom column names.
func ExampleUnstack_ascending() {
	m, err := corrtab.NewMatrix(
		[]string{"load", "temp", "rpm"},
		[][]float64{
			{1.0, -0.8, 0.6},
			{-0.8, 1.0, 0.1},
			{0.6, 0.1, 1.0},
		},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	tbl, err := corrtab.Unstack(m,
		corrtab.WithAscending(true),
		corrtab.WithColumns("var_1", "var_2"),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, e := range tbl.Edges {
		fmt.Printf("%s/%s %.1f\n", e.A, e.B, e.Corr)
	}
	// Output:
	// load/temp -0.8
	// rpm/temp 0.1
	// load/rpm 0.6
}
