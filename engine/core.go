package engine

import (
	"fmt"
	"math"

	"github.com/phylokit/phylocore/buffer"
	"github.com/phylokit/phylocore/mixture"
	"github.com/phylokit/phylocore/model"
	"github.com/phylokit/phylocore/pruning"
	"github.com/phylokit/phylocore/reduce"
	"github.com/phylokit/phylocore/transition"
)

// Operation is one post-order pruning step: combine childA's and
// childB's live partials/matrices into parent's partials.
type Operation struct {
	ChildA int
	ChildB int
	Parent int
}

// Core is the likelihood-core controller. One instance owns one
// evaluation's entire state; concurrent calls on the same instance are
// not permitted.
type Core struct {
	pool *buffer.Pool

	s, p, r int

	params     [2]*model.Params // [0]=live-or-shadow, [1]=the other
	liveParams int              // index into params of the currently-live set
	integrated []float64        // scratch, P*S
}

// New allocates a Core for N nodes over an S-state alphabet, P patterns,
// and R rate categories. tipKinds[n] selects node n's tip representation
// (buffer.Internal / buffer.TipStates / buffer.TipPartials).
func New(n, s, p, r int, tipKinds []buffer.NodeKind) (*Core, error) {
	if n <= 0 || s < 2 || p <= 0 || r <= 0 {
		return nil, fmt.Errorf("engine.New(N=%d,S=%d,P=%d,R=%d): %w", n, s, p, r, ErrBadDimensions)
	}
	pool, err := buffer.Init(n, s, p, r, tipKinds)
	if err != nil {
		return nil, fmt.Errorf("engine.New: %w", err)
	}

	return &Core{
		pool:       pool,
		s:          s,
		p:          p,
		r:          r,
		params:     [2]*model.Params{model.New(s, r), model.New(s, r)},
		liveParams: 0,
		integrated: make([]float64, p*s),
	}, nil
}

// live returns the currently-active model.Params.
func (c *Core) live() *model.Params { return c.params[c.liveParams] }

// SetTipStates writes tip n's per-pattern state array. Overwrites in
// place; tips do not flip buffers.
func (c *Core) SetTipStates(n int, states []int32) {
	copy(c.pool.TipStates(n), states)
}

// SetTipPartials writes tip n's fixed R*P*S partials array.
func (c *Core) SetTipPartials(n int, partials []float64) {
	copy(c.pool.TipPartials(n), partials)
}

// SetEigenDecomposition installs a new spectral form, recomputing
// cMatrix. Always writes into the live params slot; store/restore guards
// it.
func (c *Core) SetEigenDecomposition(u, uinv, lambda, lambdaImag []float64) {
	c.live().SetEigenDecomposition(u, uinv, lambda, lambdaImag)
}

// SetFrequencies installs the stationary distribution. Must be
// non-negative and sum to 1 within simplexTolerance.
func (c *Core) SetFrequencies(f []float64) error {
	if !isSimplex(f) {
		return fmt.Errorf("engine.SetFrequencies: %w", ErrBadFrequencies)
	}
	copy(c.live().Frequencies, f)
	return nil
}

// SetCategoryRates installs the per-category rate multipliers. Each must
// be strictly positive.
func (c *Core) SetCategoryRates(r []float64) error {
	for _, v := range r {
		if v <= 0 || math.IsNaN(v) {
			return fmt.Errorf("engine.SetCategoryRates: %w", ErrBadRates)
		}
	}
	copy(c.live().CategoryRates, r)
	return nil
}

// SetCategoryProportions installs the mixture weights. Must be
// non-negative and sum to 1 within simplexTolerance.
func (c *Core) SetCategoryProportions(p []float64) error {
	if !isSimplex(p) {
		return fmt.Errorf("engine.SetCategoryProportions: %w", ErrBadProportions)
	}
	copy(c.live().CategoryProportions, p)
	return nil
}

// isSimplex reports whether v is non-negative and sums to 1 within
// simplexTolerance.
func isSimplex(v []float64) bool {
	var sum float64
	for _, x := range v {
		if x < 0 || math.IsNaN(x) {
			return false
		}
		sum += x
	}
	return math.Abs(sum-1.0) <= simplexTolerance
}

// UpdateMatrices recomputes P(t) for each listed node. Entries are
// independent and may execute in any order; this implementation runs
// them in caller order, which is one valid serialization.
func (c *Core) UpdateMatrices(nodes []int, branchLengths []float64) {
	params := c.live()
	for i, n := range nodes {
		transition.Update(c.pool, params, n, branchLengths[i])
	}
}

// UpdatePartials runs pruning over a post-order operation list. Ops
// execute strictly in the supplied order.
func (c *Core) UpdatePartials(ops []Operation) {
	for _, op := range ops {
		pruning.Prune(c.pool, c.s, c.p, c.r, op.ChildA, op.ChildB, op.Parent)
	}
}

// CalculateLogLikelihoods collapses the root's live partials through the
// rate-category mixture and the stationary-frequency reduction into a
// per-pattern log-likelihood. out must have length P.
func (c *Core) CalculateLogLikelihoods(root int, out []float64) {
	params := c.live()
	rootPartials := c.pool.LivePartials(root)
	mixture.Integrate(c.s, c.p, c.r, params.CategoryProportions, rootPartials, c.integrated)
	reduce.Reduce(c.s, c.p, params.Frequencies, c.integrated, out)
}

// Store snapshots global model state and every node's live-index vectors
// into the shadow slots. Does not copy matrix/partials contents.
func (c *Core) Store() {
	c.live().CopyInto(c.params[1-c.liveParams])
	c.pool.Store()
}

// Restore swaps pointers/roles with the shadows captured by the last
// Store: the live model-state index flips, and the pool's current-index
// vectors swap with their stored counterparts. O(N) at worst (index
// vectors only), never proportional to recomputation done since Store.
func (c *Core) Restore() {
	c.liveParams = 1 - c.liveParams
	c.pool.Restore()
}

// Teardown releases all backing storage. The Core must not be used after.
func (c *Core) Teardown() {
	c.pool.Teardown()
}

// N, S, P, R return the dimensions fixed at New.
func (c *Core) N() int { return c.pool.N() }
func (c *Core) S() int { return c.s }
func (c *Core) P() int { return c.p }
func (c *Core) R() int { return c.r }
