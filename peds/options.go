package peds

// Options configures a PEDS computation.
//
// Fields:
//   - TimeColumn      — numeric metadata column holding the timepoint of
//     each sample; donors typically have a missing time.
//   - ReferenceColumn — categorical column naming the assigned donor of
//     each recipient sample.
//   - SubjectColumn   — categorical column linking a recipient's samples
//     across timepoints.
//   - FilterMissingReferences — drop timestamped samples without a
//     reference instead of failing with ErrMissingReferences.
//   - DropIncompleteSubjects  — drop every sample of a subject that does
//     not cover all timepoints instead of failing with
//     ErrIncompleteSubjects. Only consulted by SamplePEDS; FeaturePEDS
//     never checks completeness.
type Options struct {
	TimeColumn      string
	ReferenceColumn string
	SubjectColumn   string

	FilterMissingReferences bool
	DropIncompleteSubjects  bool
}

// DefaultOptions returns Options for the three required column names with
// both filtering switches off, so any inconsistency fails loudly.
func DefaultOptions(timeColumn, referenceColumn, subjectColumn string) Options {
	return Options{
		TimeColumn:      timeColumn,
		ReferenceColumn: referenceColumn,
		SubjectColumn:   subjectColumn,
	}
}
