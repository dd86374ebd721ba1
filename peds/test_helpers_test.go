package peds_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/engraft/frame"
	"github.com/katalvlaran/engraft/peds"
	"github.com/stretchr/testify/require"
)

// nan shortens the missing-time marker in fixtures.
var nan = math.NaN()

// studyTable builds the canonical two-donor study used across tests.
//
//	        f1 f2 f3 f4 f5
//	D1       5  3  1  0  0   donor, features {f1,f2,f3}
//	D2       0  2  0  4  0   donor, features {f2,f4}
//	A1       2  1  0  0  7   S1 @ t1, donor D1 → 2/3
//	A2       1  1  1  0  0   S1 @ t2, donor D1 → 3/3
//	B1       0  3  0  0  0   S2 @ t1, donor D2 → 1/2
//	B2       0  0  0  9  0   S2 @ t2, donor D2 → 1/2
//
// f5 appears in a recipient only, never in a donor.
func studyTable(t *testing.T) *frame.FeatureTable {
	t.Helper()
	ft, err := frame.NewFeatureTable(
		[]string{"D1", "D2", "A1", "A2", "B1", "B2"},
		[]string{"f1", "f2", "f3", "f4", "f5"},
		[]float64{
			5, 3, 1, 0, 0,
			0, 2, 0, 4, 0,
			2, 1, 0, 0, 7,
			1, 1, 1, 0, 0,
			0, 3, 0, 0, 0,
			0, 0, 0, 9, 0,
		},
	)
	require.NoError(t, err)

	return ft
}

// studyMetadata builds metadata matching studyTable: donors have no time,
// reference, or subject; recipients cover timepoints 1 and 2.
func studyMetadata(t *testing.T) *frame.Metadata {
	t.Helper()
	md, err := frame.NewMetadata(
		[]string{"D1", "D2", "A1", "A2", "B1", "B2"},
		frame.NumericColumn("time", []float64{nan, nan, 1, 2, 1, 2}),
		frame.CategoricalColumn("ref", []string{"", "", "D1", "D1", "D2", "D2"}),
		frame.CategoricalColumn("subject", []string{"", "", "S1", "S1", "S2", "S2"}),
	)
	require.NoError(t, err)

	return md
}

// measureOf returns the Measure of the row with the given ID, failing the
// test when the row is absent.
func measureOf(t *testing.T, rows []peds.Row, id string) float64 {
	t.Helper()
	for _, r := range rows {
		if r.ID == id {
			return r.Measure
		}
	}
	t.Fatalf("no result row for %q", id)

	return 0
}
