// Package phylocore is a phylogenetic likelihood core: a numerical
// engine that, given a rooted bifurcating tree with assigned branch
// lengths, site-pattern data at the tips, and a continuous-time Markov
// substitution model, computes the log-likelihood of every site pattern
// under Felsenstein's pruning algorithm.
//
// The engine is the hot inner kernel of Bayesian/ML phylogenetic
// inference: it is called millions of times per MCMC run with only a
// handful of branches perturbed each call, so the whole design is built
// around cheap incremental reevaluation — double-buffered per-node state
// that reverts a rejected proposal in O(1) instead of recomputing or
// deep-copying.
//
// Package layout, leaf-to-root:
//
//	model/      — global substitution-model state (frequencies, rates,
//	              the precomputed eigentensor) and its deep-copy
//	              CopyInto used for store/restore.
//	buffer/     — the double-buffered per-node arena: transition
//	              matrices, partials, tip data, and the live/alternate
//	              index vectors.
//	transition/ — assembles a branch's P(t) from the model's spectral
//	              form.
//	pruning/    — the three specialized + one generic kernel that
//	              combine two children's partials through their
//	              transition matrices into a parent's partials.
//	mixture/    — collapses the across-site rate-category mixture at
//	              the root.
//	reduce/     — the final stationary-frequency inner product and log.
//	engine/     — the public controller: Core, wiring everything above
//	              into the operations a tree/proposal driver calls.
//	fixtures/   — eigenstructure builders (JC69, GTR, covarion, identity)
//	              for tests and the cmd/phylocore-bench demo.
//	cmd/phylocore-bench/ — a small CLI demonstrating the engine end to end.
//
// Out of scope (external collaborators, supplied by the caller): tree
// topology and branch-length proposals, eigendecomposition of the rate
// matrix, alignment parsing and pattern compression, the MCMC driver
// itself.
package phylocore
