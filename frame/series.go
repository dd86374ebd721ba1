package frame

// Series is an ordered mapping from sample identifier to a categorical
// value, typically the donor/reference assignment of each sample. A
// Series remembers the name of the column it was derived from. Series are
// immutable; Restrict and Where return fresh values.
type Series struct {
	name  string
	ids   []string
	vals  []string
	rowOf map[string]int
}

// newSeries assembles a Series from aligned slices. Callers guarantee
// len(ids) == len(vals) and unique ids; Metadata.Series enforces both.
func newSeries(name string, ids, vals []string) *Series {
	s := &Series{name: name, ids: ids, vals: vals, rowOf: make(map[string]int, len(ids))}
	for i, id := range ids {
		s.rowOf[id] = i
	}

	return s
}

// Name returns the name of the column the series was derived from.
func (s *Series) Name() string { return s.name }

// Len returns the number of entries in the series.
func (s *Series) Len() int { return len(s.ids) }

// IDs returns a copy of the sample identifiers in series order.
func (s *Series) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)

	return out
}

// Values returns a copy of the values in series order.
func (s *Series) Values() []string {
	out := make([]string, len(s.vals))
	copy(out, s.vals)

	return out
}

// Get returns the value mapped to id and whether id is in the series.
func (s *Series) Get(id string) (string, bool) {
	i, ok := s.rowOf[id]
	if !ok {
		return "", false
	}

	return s.vals[i], true
}

// Has reports whether id is present in the series.
func (s *Series) Has(id string) bool {
	_, ok := s.rowOf[id]

	return ok
}

// Where returns a new Series containing only the entries for which pred
// returns true, preserving order.
func (s *Series) Where(pred func(id, val string) bool) *Series {
	ids := make([]string, 0, len(s.ids))
	vals := make([]string, 0, len(s.vals))
	for i, id := range s.ids {
		if pred(id, s.vals[i]) {
			ids = append(ids, id)
			vals = append(vals, s.vals[i])
		}
	}

	return newSeries(s.name, ids, vals)
}

// Restrict returns a new Series keeping only the entries whose identifier
// appears in ids, preserving the receiver's order.
func (s *Series) Restrict(ids []string) *Series {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	return s.Where(func(id, _ string) bool {
		_, ok := want[id]

		return ok
	})
}
