package frame

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FeatureTable is an immutable sample×feature matrix of non-negative
// abundances. Rows are samples, columns are features; both axes carry
// string identifiers with O(1) lookup. The payload lives in a gonum
// mat.Dense so the table composes with the rest of the gonum ecosystem.
type FeatureTable struct {
	samples  []string
	features []string
	rowOf    map[string]int
	colOf    map[string]int
	data     *mat.Dense
}

// NewFeatureTable builds a table from row-major data.
//
// Stage 1 (Validate): both axes non-empty with unique, non-empty IDs;
// len(data) == len(samples)·len(features); all values ≥ 0.
// Stage 2 (Prepare): copy axes and data, build index maps.
// Complexity: O(samples · features).
func NewFeatureTable(samples, features []string, data []float64) (*FeatureTable, error) {
	if len(samples) == 0 || len(features) == 0 {
		return nil, ErrEmptyTable
	}
	if len(data) != len(samples)*len(features) {
		return nil, fmt.Errorf("%w: %d values for %d×%d table",
			ErrShapeMismatch, len(data), len(samples), len(features))
	}
	t := &FeatureTable{
		samples:  make([]string, len(samples)),
		features: make([]string, len(features)),
		rowOf:    make(map[string]int, len(samples)),
		colOf:    make(map[string]int, len(features)),
	}
	for i, id := range samples {
		if id == "" {
			return nil, fmt.Errorf("%w: sample axis position %d", ErrEmptyID, i)
		}
		if _, dup := t.rowOf[id]; dup {
			return nil, fmt.Errorf("%w: sample %q", ErrDuplicateID, id)
		}
		t.samples[i] = id
		t.rowOf[id] = i
	}
	for j, id := range features {
		if id == "" {
			return nil, fmt.Errorf("%w: feature axis position %d", ErrEmptyID, j)
		}
		if _, dup := t.colOf[id]; dup {
			return nil, fmt.Errorf("%w: feature %q", ErrDuplicateID, id)
		}
		t.features[j] = id
		t.colOf[id] = j
	}
	for k, v := range data {
		if v < 0 {
			return nil, fmt.Errorf("%w: sample %q, feature %q",
				ErrNegativeAbundance, samples[k/len(features)], features[k%len(features)])
		}
	}
	buf := make([]float64, len(data))
	copy(buf, data)
	t.data = mat.NewDense(len(samples), len(features), buf)

	return t, nil
}

// NumSamples returns the number of samples (rows).
func (t *FeatureTable) NumSamples() int { return len(t.samples) }

// NumFeatures returns the number of features (columns).
func (t *FeatureTable) NumFeatures() int { return len(t.features) }

// Samples returns a copy of the sample identifiers in row order.
func (t *FeatureTable) Samples() []string {
	out := make([]string, len(t.samples))
	copy(out, t.samples)

	return out
}

// Features returns a copy of the feature identifiers in column order.
func (t *FeatureTable) Features() []string {
	out := make([]string, len(t.features))
	copy(out, t.features)

	return out
}

// HasSample reports whether the table has a row for id.
func (t *FeatureTable) HasSample(id string) bool {
	_, ok := t.rowOf[id]

	return ok
}

// At returns the abundance of feature in sample, or ErrUnknownID when
// either identifier is absent.
func (t *FeatureTable) At(sample, feature string) (float64, error) {
	r, ok := t.rowOf[sample]
	if !ok {
		return 0, fmt.Errorf("%w: sample %q", ErrUnknownID, sample)
	}
	c, ok := t.colOf[feature]
	if !ok {
		return 0, fmt.Errorf("%w: feature %q", ErrUnknownID, feature)
	}

	return t.data.At(r, c), nil
}

// Presence returns the boolean binarization of the table: a value is
// present iff it is strictly positive. The result is freshly allocated;
// the table is not touched.
// Complexity: O(samples · features).
func (t *FeatureTable) Presence() *Presence {
	p := &Presence{
		samples:  t.Samples(),
		features: t.Features(),
		rowOf:    make(map[string]int, len(t.samples)),
		cells:    make([]bool, len(t.samples)*len(t.features)),
	}
	for id, r := range t.rowOf {
		p.rowOf[id] = r
	}
	for r := 0; r < len(t.samples); r++ {
		row := t.data.RawRowView(r)
		base := r * len(t.features)
		for c, v := range row {
			p.cells[base+c] = v > 0
		}
	}

	return p
}
