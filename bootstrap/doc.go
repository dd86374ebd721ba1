// Package bootstrap tests whether observed per-sample PEDS values are
// significantly greater than chance by recomputing them under randomized
// donor assignment.
//
// The procedure:
//
//  1. Partition metadata rows into donors and recipients by a categorical
//     partition column (the column and its donor value are explicit,
//     required options — nothing is inferred).
//  2. Replicate 0 computes the true per-sample PEDS with the unmodified
//     assignment; its finite measures form the observed sample.
//  3. Replicates 1..R shuffle the recipients' reference values among the
//     recipient rows (without replacement, same value pool) on a working
//     copy of the metadata, recompute PEDS, and pool the finite measures
//     into the null sample.
//  4. A one-sided Mann-Whitney U test (alternative: observed stochastically
//     greater), using the tie-corrected normal approximation with
//     continuity correction, compares observed against the pooled null.
//
// Replicates are independent; only the pooled accumulator joins them, so
// the result does not depend on replicate order. The caller's metadata is
// never mutated: shuffles happen on fresh copies.
//
// Zero replicates would leave an empty null sample, so a non-positive
// replicate count fails fast with ErrNoReplicates instead of producing a
// meaningless statistic. Randomness is injectable via Options.Rand; a nil
// source falls back to a fixed-seed generator so results are reproducible
// by default.
package bootstrap
