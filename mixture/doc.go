// Package mixture collapses per-rate-category partials at the root into
// a single mixture-weighted vector per pattern: the
// across-site rate-heterogeneity integration step that runs once per
// likelihood evaluation, after all pruning is done.
package mixture
