package bootstrap_test

import (
	"testing"

	"github.com/katalvlaran/engraft/bootstrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMannWhitneyU_Greater verifies the statistic and p-value when every
// x exceeds every y: U is maximal and the one-sided p is small.
func TestMannWhitneyU_Greater(t *testing.T) {
	u, p, err := bootstrap.MannWhitneyU(
		[]float64{7, 8, 9},
		[]float64{1, 2, 3},
	)
	require.NoError(t, err)
	assert.Equal(t, 9.0, u, "U equals n1*n2 under complete separation")
	// z = (9 - 4.5 - 0.5)/sqrt(5.25) ≈ 1.7457, survival ≈ 0.0404
	assert.InDelta(t, 0.0404, p, 0.002)
}

// TestMannWhitneyU_Lesser verifies the opposite separation yields U=0 and
// a p-value near one.
func TestMannWhitneyU_Lesser(t *testing.T) {
	u, p, err := bootstrap.MannWhitneyU(
		[]float64{1, 2, 3},
		[]float64{7, 8, 9},
	)
	require.NoError(t, err)
	assert.Equal(t, 0.0, u)
	assert.Greater(t, p, 0.95)
}

// TestMannWhitneyU_TiesMidrank verifies tied values share midranks: with
// x=y element-wise the rank sums split evenly and p sits near one half.
func TestMannWhitneyU_TiesMidrank(t *testing.T) {
	u, p, err := bootstrap.MannWhitneyU(
		[]float64{1, 2, 3},
		[]float64{1, 2, 3},
	)
	require.NoError(t, err)
	assert.Equal(t, 4.5, u, "identical samples split the ranks evenly")
	assert.InDelta(t, 0.5, p, 0.15)
}

// TestMannWhitneyU_Degenerate verifies empty and zero-variance inputs
// fail with ErrDegenerate.
func TestMannWhitneyU_Degenerate(t *testing.T) {
	_, _, err := bootstrap.MannWhitneyU(nil, []float64{1})
	assert.ErrorIs(t, err, bootstrap.ErrDegenerate, "empty x")

	_, _, err = bootstrap.MannWhitneyU([]float64{1}, nil)
	assert.ErrorIs(t, err, bootstrap.ErrDegenerate, "empty y")

	_, _, err = bootstrap.MannWhitneyU([]float64{2, 2}, []float64{2, 2})
	assert.ErrorIs(t, err, bootstrap.ErrDegenerate, "all values tied")
}
