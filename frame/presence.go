package frame

// Presence is a boolean sample×feature matrix recording which features
// are detected (abundance > 0) in which samples. Cells are stored
// row-major in a flat slice; rows are addressed by sample identifier via
// an index map, mirroring the FeatureTable it was derived from.
type Presence struct {
	samples  []string
	features []string
	rowOf    map[string]int
	cells    []bool
}

// NumSamples returns the number of samples (rows).
func (p *Presence) NumSamples() int { return len(p.samples) }

// NumFeatures returns the number of features (columns).
func (p *Presence) NumFeatures() int { return len(p.features) }

// Samples returns a copy of the sample identifiers in row order.
func (p *Presence) Samples() []string {
	out := make([]string, len(p.samples))
	copy(out, p.samples)

	return out
}

// Features returns a copy of the feature identifiers in column order.
func (p *Presence) Features() []string {
	out := make([]string, len(p.features))
	copy(out, p.features)

	return out
}

// RowOf returns the row position of sample id and whether it exists.
func (p *Presence) RowOf(id string) (int, bool) {
	r, ok := p.rowOf[id]

	return r, ok
}

// RowAt returns row r as a slice view over the backing storage.
// The view is read-only by contract; callers must not modify it.
// Complexity: O(1).
func (p *Presence) RowAt(r int) []bool {
	w := len(p.features)

	return p.cells[r*w : (r+1)*w]
}

// Row returns the presence row for sample id as a read-only view, or
// false when the sample is absent.
func (p *Presence) Row(id string) ([]bool, bool) {
	r, ok := p.rowOf[id]
	if !ok {
		return nil, false
	}

	return p.RowAt(r), true
}
