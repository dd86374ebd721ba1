package frame

import "errors"

var (
	// ErrEmptyTable indicates a feature table with no samples or no features.
	ErrEmptyTable = errors.New("frame: feature table must have at least one sample and one feature")

	// ErrDuplicateID indicates a repeated sample or feature identifier on an axis.
	ErrDuplicateID = errors.New("frame: duplicate identifier")

	// ErrEmptyID indicates an empty identifier on an axis or in a metadata index.
	ErrEmptyID = errors.New("frame: empty identifier")

	// ErrShapeMismatch indicates data whose length disagrees with the declared axes.
	ErrShapeMismatch = errors.New("frame: data length does not match declared dimensions")

	// ErrNegativeAbundance indicates a negative value in an abundance table.
	ErrNegativeAbundance = errors.New("frame: abundances must be non-negative")

	// ErrUnknownID indicates a sample or feature identifier absent from the table.
	ErrUnknownID = errors.New("frame: unknown identifier")

	// ErrColumnMismatch indicates a metadata column whose length differs from the index.
	ErrColumnMismatch = errors.New("frame: column length does not match metadata index")

	// ErrDuplicateColumn indicates two metadata columns sharing one name.
	ErrDuplicateColumn = errors.New("frame: duplicate column name")

	// ErrColumnShadowsID indicates a metadata column named like the identifier header.
	ErrColumnShadowsID = errors.New("frame: column name collides with the identifier header")

	// ErrNoSuchColumn indicates a metadata column lookup by an unknown name.
	ErrNoSuchColumn = errors.New("frame: no such column")

	// ErrColumnKind indicates a typed accessor used on a column of the other type.
	ErrColumnKind = errors.New("frame: column has a different declared type")
)
