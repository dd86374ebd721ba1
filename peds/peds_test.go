package peds_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/engraft/frame"
	"github.com/katalvlaran/engraft/peds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSamplePEDS_Ratios verifies the per-sample ratios of the canonical
// study, including the spec-level 2/3 example of recipient A1.
func TestSamplePEDS_Ratios(t *testing.T) {
	rt, err := peds.SamplePEDS(studyTable(t), studyMetadata(t), opts())
	require.NoError(t, err)
	require.Equal(t, peds.Sample, rt.Kind)
	require.Equal(t, 4, rt.Len(), "one row per recipient sample")

	assert.InDelta(t, 2.0/3.0, measureOf(t, rt.Rows, "A1"), 1e-12)
	assert.InDelta(t, 1.0, measureOf(t, rt.Rows, "A2"), 1e-12)
	assert.InDelta(t, 0.5, measureOf(t, rt.Rows, "B1"), 1e-12)
	assert.InDelta(t, 0.5, measureOf(t, rt.Rows, "B2"), 1e-12)

	for _, r := range rt.Rows {
		assert.GreaterOrEqual(t, r.Measure, 0.0, "PEDS lies in [0,1]")
		assert.LessOrEqual(t, r.Measure, 1.0, "PEDS lies in [0,1]")
		assert.LessOrEqual(t, r.Numerator, r.Denominator)
	}
}

// TestSamplePEDS_RowAttributes verifies the non-measure columns of a
// per-sample row: counts, donor, subject, and time group.
func TestSamplePEDS_RowAttributes(t *testing.T) {
	rt, err := peds.SamplePEDS(studyTable(t), studyMetadata(t), opts())
	require.NoError(t, err)

	var a1 peds.Row
	for _, r := range rt.Rows {
		if r.ID == "A1" {
			a1 = r
		}
	}
	assert.Equal(t, 2, a1.Numerator, "donor features found in the recipient")
	assert.Equal(t, 3, a1.Denominator, "features detected in the donor")
	assert.Equal(t, "D1", a1.Donor)
	assert.Equal(t, "S1", a1.Subject)
	assert.Equal(t, 1.0, a1.Group)
}

// TestSamplePEDS_KeepsNaN verifies that a donor without any detected
// feature yields NaN (0/0), kept in the per-sample output.
func TestSamplePEDS_KeepsNaN(t *testing.T) {
	ft, err := frame.NewFeatureTable(
		[]string{"D0", "C1", "C2"},
		[]string{"f1"},
		[]float64{0, 1, 1},
	)
	require.NoError(t, err)
	md, err := frame.NewMetadata(
		[]string{"D0", "C1", "C2"},
		frame.NumericColumn("time", []float64{nan, 1, 2}),
		frame.CategoricalColumn("ref", []string{"", "D0", "D0"}),
		frame.CategoricalColumn("subject", []string{"", "S1", "S1"}),
	)
	require.NoError(t, err)

	rt, err := peds.SamplePEDS(ft, md, opts())
	require.NoError(t, err)
	require.Equal(t, 2, rt.Len(), "NaN rows stay in per-sample output")
	for _, r := range rt.Rows {
		assert.True(t, math.IsNaN(r.Measure), "0/0 must propagate as NaN")
		assert.Equal(t, 0, r.Denominator)
	}
}

// TestSamplePEDS_Deterministic verifies two runs over identical inputs
// produce identical result tables.
func TestSamplePEDS_Deterministic(t *testing.T) {
	ft, md := studyTable(t), studyMetadata(t)

	first, err := peds.SamplePEDS(ft, md, opts())
	require.NoError(t, err)
	second, err := peds.SamplePEDS(ft, md, opts())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestSamplePEDS_NilInputs verifies the nil guards.
func TestSamplePEDS_NilInputs(t *testing.T) {
	_, err := peds.SamplePEDS(nil, studyMetadata(t), opts())
	assert.ErrorIs(t, err, peds.ErrNilTable)
	_, err = peds.SamplePEDS(studyTable(t), nil, opts())
	assert.ErrorIs(t, err, peds.ErrNilMetadata)
	_, err = peds.FeaturePEDS(nil, studyMetadata(t), opts())
	assert.ErrorIs(t, err, peds.ErrNilTable)
	_, err = peds.FeaturePEDS(studyTable(t), nil, opts())
	assert.ErrorIs(t, err, peds.ErrNilMetadata)
}

// featureMeasure picks the measure of (feature, group) from a per-feature
// result table.
func featureMeasure(t *testing.T, rt *peds.ResultTable, id string, group float64) float64 {
	t.Helper()
	for _, r := range rt.Rows {
		if r.ID == id && r.Group == group {
			return r.Measure
		}
	}
	t.Fatalf("no row for feature %q in group %v", id, group)

	return 0
}

// TestFeaturePEDS_Ratios verifies the per-feature ratios across both time
// groups of the canonical study.
func TestFeaturePEDS_Ratios(t *testing.T) {
	rt, err := peds.FeaturePEDS(studyTable(t), studyMetadata(t), opts())
	require.NoError(t, err)
	require.Equal(t, peds.Feature, rt.Kind)
	require.Equal(t, 8, rt.Len(), "four donor-backed features × two time groups")

	assert.InDelta(t, 1.0, featureMeasure(t, rt, "f1", 1), 1e-12)
	assert.InDelta(t, 1.0, featureMeasure(t, rt, "f2", 1), 1e-12)
	assert.InDelta(t, 0.0, featureMeasure(t, rt, "f3", 1), 1e-12)
	assert.InDelta(t, 0.0, featureMeasure(t, rt, "f4", 1), 1e-12)
	assert.InDelta(t, 1.0, featureMeasure(t, rt, "f1", 2), 1e-12)
	assert.InDelta(t, 0.5, featureMeasure(t, rt, "f2", 2), 1e-12)
	assert.InDelta(t, 1.0, featureMeasure(t, rt, "f3", 2), 1e-12)
	assert.InDelta(t, 1.0, featureMeasure(t, rt, "f4", 2), 1e-12)
}

// TestFeaturePEDS_DropsNaN verifies that a feature no donor carries (f5)
// never produces a row: per-feature output holds no NaN measures.
func TestFeaturePEDS_DropsNaN(t *testing.T) {
	rt, err := peds.FeaturePEDS(studyTable(t), studyMetadata(t), opts())
	require.NoError(t, err)

	for _, r := range rt.Rows {
		assert.NotEqual(t, "f5", r.ID, "donorless features are dropped")
		assert.False(t, math.IsNaN(r.Measure), "per-feature output holds no NaN")
		assert.Equal(t, r.ID, r.Subject, "feature rows mirror the id into subject")
	}
}

// TestFeaturePEDS_GroupOrder verifies time groups are emitted ascending.
func TestFeaturePEDS_GroupOrder(t *testing.T) {
	rt, err := peds.FeaturePEDS(studyTable(t), studyMetadata(t), opts())
	require.NoError(t, err)

	last := math.Inf(-1)
	for _, r := range rt.Rows {
		assert.GreaterOrEqual(t, r.Group, last)
		last = r.Group
	}
}
