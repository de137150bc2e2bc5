package pruning

import (
	"fmt"

	"github.com/phylokit/phylocore/buffer"
)

// Prune computes parent's partials from its two children's live
// representations and live matrices, writes the result into parent's
// alternate partials buffer, and flips it.
// parent must be an Internal node.
func Prune(pool *buffer.Pool, s, p, r int, childA, childB, parent int) {
	if pool.Kind(parent) != buffer.Internal {
		panic(fmt.Sprintf("pruning.Prune: parent node %d is not Internal", parent))
	}

	out := pool.AltPartials(parent)
	kindA, kindB := pool.Kind(childA), pool.Kind(childB)

	switch {
	case kindA == buffer.TipStates && kindB == buffer.TipStates:
		statesStates(s, p, r,
			pool.TipStates(childA), pool.TipStates(childB),
			pool.LiveMatrix(childA), pool.LiveMatrix(childB), out)

	case kindA == buffer.TipStates:
		statesPartials(s, p, r,
			pool.TipStates(childA), partialsOf(pool, childB),
			pool.LiveMatrix(childA), pool.LiveMatrix(childB), out)

	case kindB == buffer.TipStates:
		statesPartials(s, p, r,
			pool.TipStates(childB), partialsOf(pool, childA),
			pool.LiveMatrix(childB), pool.LiveMatrix(childA), out)

	default:
		partialsPartials(s, p, r,
			partialsOf(pool, childA), partialsOf(pool, childB),
			pool.LiveMatrix(childA), pool.LiveMatrix(childB), out)
	}

	pool.FlipPartials(parent)
}

// partialsOf returns n's live partials view regardless of whether n is
// Internal (double-buffered, computed by pruning) or TipPartials (fixed,
// caller-supplied).
func partialsOf(pool *buffer.Pool, n int) []float64 {
	if pool.Kind(n) == buffer.TipPartials {
		return pool.TipPartials(n)
	}
	return pool.LivePartials(n)
}

func statesStates(s, p, r int, x1, x2 []int32, m1, m2, out []float64) {
	switch s {
	case 4:
		StatesStates4(p, r, x1, x2, m1, m2, out)
	case 8:
		StatesStates8(p, r, x1, x2, m1, m2, out)
	case 20:
		StatesStates20(p, r, x1, x2, m1, m2, out)
	default:
		StatesStates(s, p, r, x1, x2, m1, m2, out)
	}
}

func statesPartials(s, p, r int, x1 []int32, pi2, m1, m2, out []float64) {
	switch s {
	case 4:
		StatesPartials4(p, r, x1, pi2, m1, m2, out)
	case 8:
		StatesPartials8(p, r, x1, pi2, m1, m2, out)
	case 20:
		StatesPartials20(p, r, x1, pi2, m1, m2, out)
	default:
		StatesPartials(s, p, r, x1, pi2, m1, m2, out)
	}
}

func partialsPartials(s, p, r int, pi1, pi2, m1, m2, out []float64) {
	switch s {
	case 4:
		PartialsPartials4(p, r, pi1, pi2, m1, m2, out)
	case 8:
		PartialsPartials8(p, r, pi1, pi2, m1, m2, out)
	case 20:
		PartialsPartials20(p, r, pi1, pi2, m1, m2, out)
	default:
		PartialsPartials(s, p, r, pi1, pi2, m1, m2, out)
	}
}
