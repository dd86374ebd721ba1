package peds

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Row is one result of a PEDS computation.
//
// Sample rows: ID is the recipient sample, Donor its assigned donor,
// Subject the subject the sample belongs to, Group its timepoint.
// Feature rows: ID and Subject both carry the feature identifier, Donor
// is empty, Group is the time group the row was computed for.
type Row struct {
	ID          string
	Measure     float64
	Numerator   int
	Denominator int
	Donor       string
	Subject     string
	Group       float64
}

// ColumnInfo attaches a display title and description to one result
// column. It is presentation metadata for downstream renderers and has no
// effect on the computation.
type ColumnInfo struct {
	Name        string
	Title       string
	Description string
}

// ResultTable is the output of a PEDS computation: the result rows plus a
// parallel column-info side table describing them. The engine never
// mutates a ResultTable after returning it.
type ResultTable struct {
	Kind    Kind
	Rows    []Row
	Columns []ColumnInfo
}

// Len returns the number of result rows.
func (rt *ResultTable) Len() int { return len(rt.Rows) }

// Measures returns a copy of the Measure column in row order, NaN values
// included.
func (rt *ResultTable) Measures() []float64 {
	out := make([]float64, len(rt.Rows))
	for i, r := range rt.Rows {
		out[i] = r.Measure
	}

	return out
}

// Summary is a descriptive digest of the finite measures in a result
// table, intended for display next to the rendered table.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	Min    float64
	Max    float64
}

// Summary computes descriptive statistics over the finite (non-NaN)
// measures. A table without a single finite measure yields ErrNoMeasures
// rather than NaN statistics.
func (rt *ResultTable) Summary() (Summary, error) {
	finite := make([]float64, 0, len(rt.Rows))
	for _, r := range rt.Rows {
		if !math.IsNaN(r.Measure) {
			finite = append(finite, r.Measure)
		}
	}
	if len(finite) == 0 {
		return Summary{}, ErrNoMeasures
	}
	mean, err := stats.Mean(finite)
	if err != nil {
		return Summary{}, err
	}
	median, err := stats.Median(finite)
	if err != nil {
		return Summary{}, err
	}
	lo, err := stats.Min(finite)
	if err != nil {
		return Summary{}, err
	}
	hi, err := stats.Max(finite)
	if err != nil {
		return Summary{}, err
	}

	return Summary{Count: len(finite), Mean: mean, Median: median, Min: lo, Max: hi}, nil
}

// sampleSchema is the column-info side table for per-sample results. The
// titles echo the caller's column names so renderers can label axes with
// the user's own vocabulary.
func sampleSchema(idHeader string, opts Options) []ColumnInfo {
	return []ColumnInfo{
		{Name: "id", Title: idHeader, Description: "Sample IDs"},
		{Name: "measure", Title: "PEDS", Description: "Proportional Engraftment of Donor Strains"},
		{Name: "transferred_donor_features", Title: "Transferred Donor Features",
			Description: "Donor features detected in the recipient"},
		{Name: "total_donor_features", Title: "Total Donor Features",
			Description: "Features detected in the assigned donor"},
		{Name: "donor", Title: opts.ReferenceColumn, Description: "Donor"},
		{Name: "subject", Title: opts.SubjectColumn,
			Description: "Subject IDs linking samples across time"},
		{Name: "group", Title: opts.TimeColumn, Description: "Time"},
	}
}

// featureSchema is the column-info side table for per-feature results.
func featureSchema(opts Options) []ColumnInfo {
	return []ColumnInfo{
		{Name: "id", Title: "Feature ID", Description: ""},
		{Name: "measure", Title: "PEDS", Description: "Proportional Engraftment of Donor Strains"},
		{Name: "recipients_with_feature", Title: "Recipients with Feature",
			Description: "Recipients in which the donor-backed feature was detected"},
		{Name: "all_possible_recipients_with_feature", Title: "All Possible Recipients with Feature",
			Description: "Recipients whose assigned donor carries the feature"},
		{Name: "group", Title: opts.TimeColumn, Description: "Time"},
		{Name: "subject", Title: "Feature ID", Description: ""},
	}
}
