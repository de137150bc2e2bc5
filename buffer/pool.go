package buffer

import "fmt"

// NodeKind classifies a node's tip representation. Internal nodes always
// compute partials via pruning; tip nodes carry one of the two supplied
// representations.
type NodeKind int

const (
	// Internal marks a node whose partials are produced by a pruning
	// kernel from its two children.
	Internal NodeKind = iota
	// TipStates marks a tip encoded as one small integer per pattern.
	TipStates
	// TipPartials marks a tip encoded as a full R*P*S partials vector,
	// e.g. for ambiguity codes or an externally supplied error model.
	TipPartials
)

// Pool owns every node's double-buffered matrices and partials, plus the
// fixed (non-flipping) tip representations.
type Pool struct {
	n, s, p, r int
	kinds      []NodeKind

	// matrices[b][n] is the R*S*S transition matrix for node n in buffer b.
	// Allocated for every node: tips need a transition matrix for the
	// branch to their parent just as internal nodes do.
	matrices [2][][]float64
	matBuf   []int8 // current buffer index per node, 0 or 1

	// partials[b][n] is the R*P*S partial-likelihood vector for node n in
	// buffer b. Allocated only for Internal nodes; nil slice for tips.
	partials    [2][][]float64
	partialsBuf []int8

	tipStates   [][]int32   // length P, non-nil only for TipStates nodes
	tipPartials [][]float64 // length R*P*S, non-nil only for TipPartials nodes

	storedMatBuf      []int8 // snapshot target for Store/Restore
	storedPartialsBuf []int8
}

// Init allocates every per-node array for N nodes over an S-state
// alphabet, P patterns, and R rate categories. tipKinds[n] selects the
// node's representation; len(tipKinds) must equal N.
func Init(n, s, p, r int, tipKinds []NodeKind) (*Pool, error) {
	if n <= 0 || s <= 0 || p <= 0 || r <= 0 {
		return nil, fmt.Errorf("buffer.Init(N=%d,S=%d,P=%d,R=%d): %w", n, s, p, r, ErrZeroDimension)
	}
	if s > MaxStateCount {
		return nil, fmt.Errorf("buffer.Init: S=%d exceeds MaxStateCount=%d: %w", s, MaxStateCount, ErrAlphabetTooLarge)
	}
	if len(tipKinds) != n {
		return nil, fmt.Errorf("buffer.Init: len(tipKinds)=%d, N=%d: %w", len(tipKinds), n, ErrKindCountMismatch)
	}

	pool := &Pool{
		n:                 n,
		s:                 s,
		p:                 p,
		r:                 r,
		kinds:             append([]NodeKind(nil), tipKinds...),
		matBuf:            make([]int8, n),
		partialsBuf:       make([]int8, n),
		storedMatBuf:      make([]int8, n),
		storedPartialsBuf: make([]int8, n),
		tipStates:         make([][]int32, n),
		tipPartials:       make([][]float64, n),
	}

	matSize := r * s * s
	partialsSize := r * p * s
	for b := 0; b < 2; b++ {
		pool.matrices[b] = make([][]float64, n)
		pool.partials[b] = make([][]float64, n)
		for i := 0; i < n; i++ {
			pool.matrices[b][i] = make([]float64, matSize)
			if pool.kinds[i] == Internal {
				pool.partials[b][i] = make([]float64, partialsSize)
			}
		}
	}
	for i := 0; i < n; i++ {
		switch pool.kinds[i] {
		case TipStates:
			pool.tipStates[i] = make([]int32, p)
		case TipPartials:
			pool.tipPartials[i] = make([]float64, partialsSize)
		}
	}

	return pool, nil
}

// N, S, P, R return the dimensions fixed at Init.
func (pl *Pool) N() int { return pl.n }
func (pl *Pool) S() int { return pl.s }
func (pl *Pool) P() int { return pl.p }
func (pl *Pool) R() int { return pl.r }

// Kind reports node n's tip representation.
func (pl *Pool) Kind(n int) NodeKind { return pl.kinds[n] }

// LiveMatrix returns node n's currently-live transition matrix (R*S*S).
func (pl *Pool) LiveMatrix(n int) []float64 { return pl.matrices[pl.matBuf[n]][n] }

// AltMatrix returns node n's alternate (not-yet-live) transition matrix,
// the write target for transition.Update.
func (pl *Pool) AltMatrix(n int) []float64 { return pl.matrices[1-pl.matBuf[n]][n] }

// FlipMatrix toggles node n's live matrix buffer index.
func (pl *Pool) FlipMatrix(n int) { pl.matBuf[n] = 1 - pl.matBuf[n] }

// LivePartials returns internal node n's currently-live partials (R*P*S).
func (pl *Pool) LivePartials(n int) []float64 { return pl.partials[pl.partialsBuf[n]][n] }

// AltPartials returns internal node n's alternate partials, the write
// target for a pruning kernel.
func (pl *Pool) AltPartials(n int) []float64 { return pl.partials[1-pl.partialsBuf[n]][n] }

// FlipPartials toggles internal node n's live partials buffer index.
func (pl *Pool) FlipPartials(n int) { pl.partialsBuf[n] = 1 - pl.partialsBuf[n] }

// TipStates returns tip n's per-pattern state array (mutable view).
// Valid only when Kind(n) == TipStates.
func (pl *Pool) TipStates(n int) []int32 { return pl.tipStates[n] }

// TipPartials returns tip n's fixed R*P*S partials array (mutable view).
// Valid only when Kind(n) == TipPartials.
func (pl *Pool) TipPartials(n int) []float64 { return pl.tipPartials[n] }

// Store snapshots the current-index vectors into the shadow slots. Does
// not touch matrix/partials contents: store/restore never copies buffer
// contents, only indices.
func (pl *Pool) Store() {
	copy(pl.storedMatBuf, pl.matBuf)
	copy(pl.storedPartialsBuf, pl.partialsBuf)
}

// Restore swaps the live index vectors with the shadow slots captured by
// the last Store. O(1): swapping two slice headers, never a deep copy.
func (pl *Pool) Restore() {
	pl.matBuf, pl.storedMatBuf = pl.storedMatBuf, pl.matBuf
	pl.partialsBuf, pl.storedPartialsBuf = pl.storedPartialsBuf, pl.partialsBuf
}

// Teardown releases all backing arrays. The Pool must not be used after.
func (pl *Pool) Teardown() {
	pl.matrices[0], pl.matrices[1] = nil, nil
	pl.partials[0], pl.partials[1] = nil, nil
	pl.tipStates = nil
	pl.tipPartials = nil
	pl.matBuf, pl.storedMatBuf = nil, nil
	pl.partialsBuf, pl.storedPartialsBuf = nil, nil
}
