// Package model holds the global substitution-model state shared by every
// node in a phylogenetic likelihood evaluation: stationary frequencies,
// across-site rate-category rates and mixture proportions, and the
// eigenstructure of the rate matrix in the precomputed-tensor form that
// lets the transition package assemble P(t) with one dot-product per cell.
//
// Params is a plain data holder, same role as matrix.Dense in the lvlath
// package this core is adapted from: it validates nothing on construction
// and exposes storage, the SetEigenDecomposition tensor fill, and a deep
// CopyInto for the engine's double-buffered store/restore discipline. Shape validation lives at the
// engine boundary, where the caller-facing Set* operations are defined.
//
// Why a separate package:
//   - buffer, transition, pruning, mixture, and reduce all need the
//     dimensions (S, R) and none of them need to know how Params is
//     mutated; keeping it separate avoids an import cycle back into
//     engine, which is the only package that mutates it through a
//     validated API.
package model
