package bootstrap

import "errors"

var (
	// ErrNoReplicates indicates a non-positive replicate count; an empty
	// null distribution admits no meaningful test.
	ErrNoReplicates = errors.New("bootstrap: replicate count must be positive")

	// ErrEmptyPartition indicates that the partition column left one side
	// (donors or recipients) without any rows.
	ErrEmptyPartition = errors.New("bootstrap: partition left no rows on one side")

	// ErrDegenerate indicates that the rank-sum test cannot run: one of
	// the samples has no finite measures, or all pooled values are tied.
	ErrDegenerate = errors.New("bootstrap: degenerate samples for the rank-sum test")
)
