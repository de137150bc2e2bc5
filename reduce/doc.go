// Package reduce implements the final step of a likelihood evaluation:
// the stationary-frequency inner product and logarithm that turns a
// per-pattern mixture-integrated partials vector into a per-pattern
// log-likelihood.
package reduce
