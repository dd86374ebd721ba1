// Package peds computes Proportional Engraftment of Donor Strains: the
// fraction of a donor's detected features that are also detected in the
// recipient samples assigned to that donor.
//
// Two entry points share one engine:
//
//   - SamplePEDS  — one ratio per recipient sample: how much of the
//     assigned donor's feature set the sample carries. NaN ratios (donor
//     with zero detected features) are kept in the output.
//   - FeaturePEDS — one ratio per feature and timepoint: in how many of
//     the possible recipients the donor-backed feature actually appears.
//     NaN rows are dropped from the output.
//
// 🔎 Validation pipeline (in order, first failure aborts the call):
//
//  1. time column exists, is not the identifier header, is numeric
//  2. reference column exists, is not the identifier header, is categorical
//  3. every timestamped sample has a reference, or
//     Options.FilterMissingReferences drops the offenders
//  4. subject column exists, is not the identifier header, is categorical
//  5. no subject occurs twice at one timepoint
//  6. every subject covers every timepoint, or
//     Options.DropIncompleteSubjects removes incomplete subjects
//     (SamplePEDS only; FeaturePEDS skips the completeness check)
//
// Checks run on the metadata state left by the previous step: filtering is
// cumulative, except that the required timepoint count is fixed up front
// from the unfiltered (table-restricted) metadata.
//
// Every validation failure is a sentinel error (errors.Is-matchable)
// wrapped with the concrete offending identifiers, so bad rows can be
// located in large metadata tables without guesswork.
//
// The result table carries a parallel []ColumnInfo side table with
// per-column display titles for downstream renderers; the numeric engine
// itself is free of presentation concerns.
//
// Determinism: identical inputs yield identical result tables. All output
// orders derive from input orders, never from map iteration.
package peds
