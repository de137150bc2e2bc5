// Package pruning implements Felsenstein's post-order pruning recursion:
// given two children's representations and their live transition
// matrices, produce the parent's partial-likelihood vector.
//
// Three input shapes are possible for a pair of children (states/states,
// states/partials, partials/partials); Prune picks the right kernel by
// inspecting each child's buffer.NodeKind. Every kernel is provided in a
// generic form (any S) and in specialized forms for S=4 (nucleotide),
// S=8 (covarion), and S=20 (amino acid). Only the S=4 forms are unrolled
// by hand; the S=8 and S=20 forms are not unrolled in the source: they are
// loops whose trip count is written as a Go constant, leaving any
// unrolling and bounds-check elimination to the compiler.
//
// A state value >= S in a tip's state array is the "unknown/gap"
// sentinel: every kernel treats it as if the tip contributed a uniform
// 1.0 to each ancestral state, the vacuous-observation case.
//
// Every kernel zeroes its inner accumulator at the start of each output
// row; see DESIGN.md for the one place a carried-over accumulator across
// rows would be incorrect and is deliberately avoided.
package pruning
