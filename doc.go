// Package engraft computes Proportional Engraftment of Donor Strains
// (PEDS) — the fraction of a donor's detected microbial features that are
// also detected in a recipient sample over time — for microbiome
// transplant studies.
//
// 🚀 What is engraft?
//
//	A pure, in-memory, deterministic library that brings together:
//		• Typed tabular inputs: abundance tables & metadata with declared column types
//		• Strict up-front validation: every failure names the offending rows
//		• Per-sample and per-feature PEDS ratios over presence/absence matrices
//		• A bootstrap significance test against randomized donor assignment
//
// ✨ Why choose engraft?
//
//   - Deterministic – identical inputs always yield identical result tables
//   - No I/O, no side effects – plain tables in, plain tables out
//   - Actionable errors – sentinel errors carrying the concrete sample/subject IDs
//   - Pure Go – gonum under the hood, no cgo
//
// Everything is organized under three subpackages:
//
//	frame/     — feature tables, presence matrices, typed sample metadata
//	peds/      — validation, donor resolution, and the PEDS engine itself
//	bootstrap/ — null-distribution generation and the one-sided rank-sum test
//
// Quick sketch:
//
//	donor D     : {f1, f2, f3}
//	recipient A : {f1, f2},  assigned donor = D
//	PEDS(A)     = |{f1,f2} ∩ {f1,f2,f3}| / |{f1,f2,f3}| = 2/3
//
// Dive into the package docs for full examples and the exact validation
// order applied before any ratio is computed.
//
//	go get github.com/katalvlaran/engraft
package engraft
