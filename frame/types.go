package frame

import "math"

// ColumnType is the declared type of a metadata column. It is fixed when
// the column is constructed and is never re-inferred from the values; all
// validation downstream queries this declaration.
type ColumnType int

const (
	// Numeric columns hold float64 values; NaN marks a missing value.
	Numeric ColumnType = iota

	// Categorical columns hold string values; "" marks a missing value.
	Categorical
)

// String returns the lower-case name of the column type.
func (t ColumnType) String() string {
	switch t {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// Column is one typed metadata column: a name, a declared ColumnType, and
// values aligned with the owning Metadata's sample order. Columns are
// value types; constructors copy their input slices so later caller
// mutations cannot leak in.
type Column struct {
	name string
	typ  ColumnType
	nums []float64 // populated when typ == Numeric
	cats []string  // populated when typ == Categorical
}

// NumericColumn builds a Numeric column. Use math.NaN() for missing values.
func NumericColumn(name string, values []float64) Column {
	nums := make([]float64, len(values))
	copy(nums, values)

	return Column{name: name, typ: Numeric, nums: nums}
}

// CategoricalColumn builds a Categorical column. Use "" for missing values.
func CategoricalColumn(name string, values []string) Column {
	cats := make([]string, len(values))
	copy(cats, values)

	return Column{name: name, typ: Categorical, cats: cats}
}

// Name returns the column name.
func (c Column) Name() string { return c.name }

// Type returns the declared column type.
func (c Column) Type() ColumnType { return c.typ }

// Len returns the number of values in the column.
func (c Column) Len() int {
	if c.typ == Numeric {
		return len(c.nums)
	}

	return len(c.cats)
}

// IsMissing reports whether the value at position i is missing
// (NaN for Numeric columns, "" for Categorical ones).
func (c Column) IsMissing(i int) bool {
	if c.typ == Numeric {
		return math.IsNaN(c.nums[i])
	}

	return c.cats[i] == ""
}

// Floats returns a copy of a Numeric column's values.
// Calling it on a Categorical column returns ErrColumnKind.
func (c Column) Floats() ([]float64, error) {
	if c.typ != Numeric {
		return nil, ErrColumnKind
	}
	out := make([]float64, len(c.nums))
	copy(out, c.nums)

	return out, nil
}

// Strings returns a copy of a Categorical column's values.
// Calling it on a Numeric column returns ErrColumnKind.
func (c Column) Strings() ([]string, error) {
	if c.typ != Categorical {
		return nil, ErrColumnKind
	}
	out := make([]string, len(c.cats))
	copy(out, c.cats)

	return out, nil
}

// slice returns a column restricted to the given row positions.
// Internal helper for Metadata filtering; positions must be valid.
func (c Column) slice(rows []int) Column {
	out := Column{name: c.name, typ: c.typ}
	if c.typ == Numeric {
		out.nums = make([]float64, len(rows))
		for i, r := range rows {
			out.nums[i] = c.nums[r]
		}

		return out
	}
	out.cats = make([]string, len(rows))
	for i, r := range rows {
		out.cats[i] = c.cats[r]
	}

	return out
}
