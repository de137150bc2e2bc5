// Package transition assembles a node's transition-probability matrix
// P(t) from the model's precomputed eigentensor and a branch length, via
// the spectral form P(t) = sum_k C[:,:,k] * exp(lambda_k * t).
//
// A real eigenvalue contributes a plain exponential term; a
// complex-conjugate pair contributes a 2x2 rotation block folded into
// two adjacent CMatrix planes, so the per-category assembly stays a
// single uniform dot product per (i,j) cell rather than a full matrix
// multiply against separate eigenvector arrays.
package transition
