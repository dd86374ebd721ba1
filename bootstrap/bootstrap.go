package bootstrap

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/engraft/frame"
	"github.com/katalvlaran/engraft/peds"
)

// DefaultReplicates is the replicate count used by DefaultOptions.
const DefaultReplicates = 999

// defaultSeed feeds the fallback generator when Options.Rand is nil, so
// two runs without an explicit source agree with each other.
const defaultSeed = 1

// Options configures a bootstrap significance test.
//
// Fields:
//   - PEDS            — column names and filtering switches handed to every
//     per-sample PEDS computation, true and randomized alike.
//   - PartitionColumn — categorical column splitting rows into donors and
//     recipients (for example a body-site column).
//   - DonorValue      — rows whose partition value equals DonorValue are
//     donors; every other row is a recipient.
//   - Replicates      — number of randomized recomputations; must be > 0.
//   - Rand            — randomness source for the shuffles. nil selects a
//     fixed-seed source, making the default reproducible.
type Options struct {
	PEDS            peds.Options
	PartitionColumn string
	DonorValue      string
	Replicates      int
	Rand            *rand.Rand
}

// DefaultOptions returns Options with DefaultReplicates and the fallback
// randomness source.
func DefaultOptions(p peds.Options, partitionColumn, donorValue string) Options {
	return Options{
		PEDS:            p,
		PartitionColumn: partitionColumn,
		DonorValue:      donorValue,
		Replicates:      DefaultReplicates,
	}
}

// Result is the outcome of a bootstrap test: the Mann-Whitney U statistic
// of the observed sample against the pooled null, its one-sided p-value,
// and the two finite-measure samples the test compared.
type Result struct {
	Statistic float64
	PValue    float64
	Observed  []float64
	Null      []float64
}

// Test runs the full bootstrap procedure described in the package doc.
//
// The observed sample comes from one true PEDS computation; the null
// sample pools Replicates recomputations under shuffled recipient→donor
// assignment. The caller's metadata is treated as an immutable snapshot.
func Test(t *frame.FeatureTable, md *frame.Metadata, opts Options) (Result, error) {
	if t == nil {
		return Result{}, peds.ErrNilTable
	}
	if md == nil {
		return Result{}, peds.ErrNilMetadata
	}
	if opts.Replicates <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrNoReplicates, opts.Replicates)
	}
	partCol, err := peds.CheckColumn(md, opts.PartitionColumn, peds.RolePartition, frame.Categorical)
	if err != nil {
		return Result{}, err
	}
	refCol, err := peds.CheckColumn(md, opts.PEDS.ReferenceColumn, peds.RoleReference, frame.Categorical)
	if err != nil {
		return Result{}, err
	}

	// Partition rows into donors and recipients.
	partVals, err := partCol.Strings()
	if err != nil {
		return Result{}, err
	}
	var donorRows, recipRows []int
	for i, v := range partVals {
		if v == opts.DonorValue {
			donorRows = append(donorRows, i)
		} else {
			recipRows = append(recipRows, i)
		}
	}
	if len(donorRows) == 0 {
		return Result{}, fmt.Errorf("%w: no row of column %q has donor value %q",
			ErrEmptyPartition, opts.PartitionColumn, opts.DonorValue)
	}
	if len(recipRows) == 0 {
		return Result{}, fmt.Errorf("%w: every row of column %q has donor value %q",
			ErrEmptyPartition, opts.PartitionColumn, opts.DonorValue)
	}

	// Replicate 0: the true assignment.
	trueRT, err := peds.SamplePEDS(t, md, opts.PEDS)
	if err != nil {
		return Result{}, err
	}
	observed := finite(trueRT.Measures())

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultSeed))
	}
	refVals, err := refCol.Strings()
	if err != nil {
		return Result{}, err
	}

	var null []float64
	for r := 0; r < opts.Replicates; r++ {
		shuffled, err := shuffleRecipients(md, opts.PEDS.ReferenceColumn, refVals, recipRows, rng)
		if err != nil {
			return Result{}, err
		}
		rt, err := peds.SamplePEDS(t, shuffled, opts.PEDS)
		if err != nil {
			return Result{}, err
		}
		null = append(null, finite(rt.Measures())...)
	}

	u, p, err := mannWhitneyU(observed, null)
	if err != nil {
		return Result{}, err
	}

	return Result{Statistic: u, PValue: p, Observed: observed, Null: null}, nil
}

// shuffleRecipients permutes the reference values of the recipient rows
// among themselves and returns a fresh metadata carrying the randomized
// column. Donor rows keep their values; base is never modified.
func shuffleRecipients(base *frame.Metadata, referenceColumn string,
	refVals []string, recipRows []int, rng *rand.Rand) (*frame.Metadata, error) {
	next := make([]string, len(refVals))
	copy(next, refVals)
	perm := rng.Perm(len(recipRows))
	for i, j := range perm {
		next[recipRows[i]] = refVals[recipRows[j]]
	}

	return base.WithColumnValues(referenceColumn, next)
}

// finite drops NaN values, keeping order.
func finite(vals []float64) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}

	return out
}
