// Package fixtures builds the eigenstructure inputs engine.SetEigenDecomposition
// expects (U, Uinv, lambda, lambdaImag) from named rate matrices, for use by
// tests and cmd/phylocore-bench. None of this is on the hot path: a real
// caller supplies its own eigendecomposition, so everything here runs once
// at setup time and favors clarity over speed.
//
// The reversible-model path (JC69, GTR, the covarion switching model)
// symmetrizes Q via the standard D^{1/2} Q D^{-1/2} trick and diagonalizes
// the symmetric result with a from-scratch Jacobi rotation solver
// (jacobi.go), rebuilt against flat row-major []float64 arrays rather than
// a Matrix interface type. A general asymmetric rate matrix, which a
// Jacobi sweep cannot diagonalize, falls back to gonum's general
// eigendecomposition (decompose.go, DecomposeGeneral).
package fixtures
