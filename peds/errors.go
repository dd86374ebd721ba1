package peds

import "errors"

// Sentinel errors for the PEDS pipeline. Callers match with errors.Is;
// the wrapped message enumerates the offending identifiers or values.
var (
	// ErrNilTable indicates a nil feature table argument.
	ErrNilTable = errors.New("peds: feature table is nil")

	// ErrNilMetadata indicates a nil metadata argument.
	ErrNilMetadata = errors.New("peds: metadata is nil")

	// ErrColumnNotFound indicates a named column absent from the metadata.
	ErrColumnNotFound = errors.New("peds: column not found in metadata")

	// ErrColumnIsID indicates a named column that is the metadata
	// identifier header rather than a real column.
	ErrColumnIsID = errors.New("peds: column is the metadata identifier header")

	// ErrColumnType indicates a column whose declared type does not match
	// the type its role requires.
	ErrColumnType = errors.New("peds: column has the wrong declared type")

	// ErrMissingReferences indicates timestamped samples without a
	// reference value while filtering is disabled.
	ErrMissingReferences = errors.New("peds: missing references for samples with a timepoint")

	// ErrDuplicateTimepoint indicates a subject sampled more than once at
	// the same timepoint.
	ErrDuplicateTimepoint = errors.New("peds: subject occurs more than once in a timepoint")

	// ErrIncompleteSubjects indicates subjects that do not cover every
	// timepoint while dropping is disabled.
	ErrIncompleteSubjects = errors.New("peds: subjects are missing timepoints")

	// ErrUnknownReferences indicates reference identifiers that have no
	// row in the feature table.
	ErrUnknownReferences = errors.New("peds: reference ids not present in the feature table")

	// ErrNoMeasures indicates a result table without a single finite
	// measure to summarize.
	ErrNoMeasures = errors.New("peds: result table has no finite measures")

	// ErrInternal indicates a contract violation inside the engine
	// (unrecognized computation kind). Unreachable from the public API.
	ErrInternal = errors.New("peds: internal error: unrecognized computation kind")
)
