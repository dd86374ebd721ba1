package frame

import "fmt"

// DefaultIDHeader is the identifier header assigned to new Metadata when
// none is set explicitly. Validation treats a column named like the
// header as a caller mistake, so the header participates in the contract.
const DefaultIDHeader = "sample-id"

// Metadata is a sample-indexed table of typed columns.
//
// The index is an ordered list of unique, non-empty sample identifiers;
// every column holds exactly one value per identifier, in index order.
// Metadata is immutable after construction: filtering and column
// replacement return fresh tables.
type Metadata struct {
	idHeader string
	ids      []string
	rowOf    map[string]int
	cols     []Column
	colOf    map[string]int
}

// NewMetadata builds a Metadata over ids with the given columns.
//
// Stage 1 (Validate): ids unique and non-empty, column lengths equal to
// len(ids), column names unique and distinct from the identifier header.
// Stage 2 (Prepare): copy ids, build row and column indexes.
// Complexity: O(rows · cols).
func NewMetadata(ids []string, cols ...Column) (*Metadata, error) {
	m := &Metadata{
		idHeader: DefaultIDHeader,
		ids:      make([]string, len(ids)),
		rowOf:    make(map[string]int, len(ids)),
		cols:     make([]Column, 0, len(cols)),
		colOf:    make(map[string]int, len(cols)),
	}
	for i, id := range ids {
		if id == "" {
			return nil, fmt.Errorf("%w: metadata index position %d", ErrEmptyID, i)
		}
		if _, dup := m.rowOf[id]; dup {
			return nil, fmt.Errorf("%w: metadata index %q", ErrDuplicateID, id)
		}
		m.ids[i] = id
		m.rowOf[id] = i
	}
	for _, c := range cols {
		if err := m.addColumn(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// addColumn validates and appends one column. Internal to construction.
func (m *Metadata) addColumn(c Column) error {
	if c.name == "" || c.name == m.idHeader {
		return fmt.Errorf("%w: column %q", ErrColumnShadowsID, c.name)
	}
	if c.Len() != len(m.ids) {
		return fmt.Errorf("%w: column %q has %d values, index has %d",
			ErrColumnMismatch, c.name, c.Len(), len(m.ids))
	}
	if _, dup := m.colOf[c.name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, c.name)
	}
	m.colOf[c.name] = len(m.cols)
	m.cols = append(m.cols, c)

	return nil
}

// WithIDHeader returns a copy of the metadata using header as its
// identifier header. The header may not equal any existing column name.
func (m *Metadata) WithIDHeader(header string) (*Metadata, error) {
	if _, clash := m.colOf[header]; clash || header == "" {
		return nil, fmt.Errorf("%w: header %q", ErrColumnShadowsID, header)
	}
	out := m.shallowCopy()
	out.idHeader = header

	return out, nil
}

// IDHeader returns the identifier header of the metadata index.
func (m *Metadata) IDHeader() string { return m.idHeader }

// Len returns the number of samples in the metadata.
func (m *Metadata) Len() int { return len(m.ids) }

// IDs returns a copy of the sample identifiers in index order.
func (m *Metadata) IDs() []string {
	out := make([]string, len(m.ids))
	copy(out, m.ids)

	return out
}

// Has reports whether id is present in the metadata index.
func (m *Metadata) Has(id string) bool {
	_, ok := m.rowOf[id]

	return ok
}

// Column returns the named column and whether it exists.
func (m *Metadata) Column(name string) (Column, bool) {
	i, ok := m.colOf[name]
	if !ok {
		return Column{}, false
	}

	return m.cols[i], true
}

// ColumnNames returns the column names in declaration order.
func (m *Metadata) ColumnNames() []string {
	out := make([]string, len(m.cols))
	for i, c := range m.cols {
		out[i] = c.name
	}

	return out
}

// Series derives a Series from the named categorical column, pairing each
// sample identifier with the column's value at that row.
func (m *Metadata) Series(name string) (*Series, error) {
	c, ok := m.Column(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchColumn, name)
	}
	vals, err := c.Strings()
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", name, err)
	}

	return newSeries(name, m.IDs(), vals), nil
}

// FilterIDs returns a new Metadata restricted to the identifiers in keep,
// preserving the receiver's index order. Unknown identifiers in keep are
// ignored; the receiver is left untouched.
// Complexity: O(rows · cols).
func (m *Metadata) FilterIDs(keep []string) *Metadata {
	want := make(map[string]struct{}, len(keep))
	for _, id := range keep {
		want[id] = struct{}{}
	}
	rows := make([]int, 0, len(m.ids))
	for i, id := range m.ids {
		if _, ok := want[id]; ok {
			rows = append(rows, i)
		}
	}

	return m.selectRows(rows)
}

// WithColumnValues returns a new Metadata in which the named categorical
// column's values are replaced by vals (aligned with the index order).
// The receiver is left untouched; the bootstrap shuffle relies on this to
// randomize assignments on a working copy only.
func (m *Metadata) WithColumnValues(name string, vals []string) (*Metadata, error) {
	i, ok := m.colOf[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchColumn, name)
	}
	if m.cols[i].typ != Categorical {
		return nil, fmt.Errorf("column %q: %w", name, ErrColumnKind)
	}
	if len(vals) != len(m.ids) {
		return nil, fmt.Errorf("%w: column %q given %d values, index has %d",
			ErrColumnMismatch, name, len(vals), len(m.ids))
	}
	out := m.shallowCopy()
	out.cols[i] = CategoricalColumn(name, vals)

	return out, nil
}

// selectRows builds a new Metadata from the given row positions.
func (m *Metadata) selectRows(rows []int) *Metadata {
	out := &Metadata{
		idHeader: m.idHeader,
		ids:      make([]string, len(rows)),
		rowOf:    make(map[string]int, len(rows)),
		cols:     make([]Column, len(m.cols)),
		colOf:    make(map[string]int, len(m.cols)),
	}
	for i, r := range rows {
		out.ids[i] = m.ids[r]
		out.rowOf[m.ids[r]] = i
	}
	for i, c := range m.cols {
		out.cols[i] = c.slice(rows)
		out.colOf[c.name] = i
	}

	return out
}

// shallowCopy duplicates the metadata structure; column values are shared
// until a column is replaced wholesale.
func (m *Metadata) shallowCopy() *Metadata {
	out := &Metadata{
		idHeader: m.idHeader,
		ids:      make([]string, len(m.ids)),
		rowOf:    make(map[string]int, len(m.ids)),
		cols:     make([]Column, len(m.cols)),
		colOf:    make(map[string]int, len(m.cols)),
	}
	copy(out.ids, m.ids)
	for id, i := range m.rowOf {
		out.rowOf[id] = i
	}
	copy(out.cols, m.cols)
	for name, i := range m.colOf {
		out.colOf[name] = i
	}

	return out
}
