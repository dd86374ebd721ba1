// Package frame provides the tabular data model consumed by the PEDS
// computation: sample×feature abundance tables, their boolean presence
// views, and sample metadata with declared column types.
//
// ✨ Key types:
//
//   - FeatureTable — immutable sample×feature matrix of non-negative
//     abundances, backed by gonum's mat.Dense with string index maps on
//     both axes.
//   - Presence     — boolean binarization of a FeatureTable (value > 0 ⇒
//     present), the raw material for engraftment counting.
//   - Metadata     — a sample-indexed table of typed columns. Every column
//     declares Numeric or Categorical at construction; downstream code
//     queries the declared type instead of inferring one.
//   - Series       — an ordered (sample ID → string value) mapping derived
//     from a categorical column, used for donor/reference assignment.
//
// Lifecycle contract: tables and metadata are immutable after
// construction. Filtering operations (FilterIDs, Restrict,
// WithColumnValues) always return fresh values and never mutate the
// receiver, so callers can hold snapshots across repeated computations.
//
// Missing values: Numeric columns use NaN, Categorical columns use the
// empty string. Constructors do not reject missing values — whether a
// missing value is an error is the caller's policy.
package frame
