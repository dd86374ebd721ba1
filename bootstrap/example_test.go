package bootstrap_test

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/engraft/bootstrap"
	"github.com/katalvlaran/engraft/frame"
	"github.com/katalvlaran/engraft/peds"
)

// ExampleTest runs a small bootstrap against randomized donor assignment
// and reports whether the observed engraftment beats the null.
func ExampleTest() {
	table, _ := frame.NewFeatureTable(
		[]string{"D1", "D2", "A1", "A2", "B1", "B2"},
		[]string{"f1", "f2", "f3", "f4"},
		[]float64{
			5, 3, 1, 0,
			0, 2, 0, 4,
			2, 1, 0, 0,
			1, 1, 1, 0,
			0, 3, 0, 0,
			0, 0, 0, 9,
		},
	)
	md, _ := frame.NewMetadata(
		[]string{"D1", "D2", "A1", "A2", "B1", "B2"},
		frame.NumericColumn("time", []float64{math.NaN(), math.NaN(), 1, 2, 1, 2}),
		frame.CategoricalColumn("ref", []string{"", "", "D1", "D1", "D2", "D2"}),
		frame.CategoricalColumn("subject", []string{"", "", "S1", "S1", "S2", "S2"}),
		frame.CategoricalColumn("site", []string{"donor-stool", "donor-stool", "gut", "gut", "gut", "gut"}),
	)

	opts := bootstrap.DefaultOptions(
		peds.DefaultOptions("time", "ref", "subject"),
		"site", "donor-stool",
	)
	opts.Replicates = 99
	opts.Rand = rand.New(rand.NewSource(7))

	res, _ := bootstrap.Test(table, md, opts)
	fmt.Printf("observed=%d null=%d p in (0,1): %v\n",
		len(res.Observed), len(res.Null), res.PValue > 0 && res.PValue < 1)
	// Output:
	// observed=4 null=396 p in (0,1): true
}
