package bootstrap

// MannWhitneyU exposes the rank-sum helper to the external test package.
var MannWhitneyU = mannWhitneyU
