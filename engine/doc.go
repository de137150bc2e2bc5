// Package engine is the versioning/controller layer: the
// public entry point of the likelihood core. Core owns a buffer.Pool and
// a double-buffered model.Params, and orchestrates the other packages —
// transition for matrix assembly, pruning for the kernel dispatch,
// mixture and reduce for the root-level collapse — into the operations
// a tree/proposal driver actually calls:
//
//	SetTipStates / SetTipPartials   — write tip data once at setup
//	SetEigenDecomposition           — install a new rate-matrix spectral form
//	SetFrequencies / SetCategoryRates / SetCategoryProportions
//	UpdateMatrices                  — recompute P(t) for a set of branches
//	UpdatePartials                  — run pruning over a post-order op list
//	CalculateLogLikelihoods         — collapse the root into per-pattern logs
//	Store / Restore                 — O(1)-restore checkpoint for MCMC churn
//
// This is the package where caller input is validated (New also passes
// through buffer.Init's shape errors): a bad shape or an alphabet of
// fewer than two states is an error returned from New; an out-of-range node
// index elsewhere is a programming error and panics — fail-fast on
// programmer error, return a sentinel on caller error.
package engine
