package engine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phylokit/phylocore/buffer"
	"github.com/phylokit/phylocore/engine"
	"github.com/phylokit/phylocore/fixtures"
)

// newJC69Core builds a 3-node (two tips, one internal root) Core under a
// JC69 model, the smallest tree the engine's pipeline can evaluate
// end to end.
func newJC69Core(t *testing.T) *engine.Core {
	t.Helper()
	const s, p, r = 4, 2, 1
	q, freq := fixtures.JC69(s)
	u, uinv, lambda, lambdaImag, err := fixtures.Decompose(q, freq, s)
	require.NoError(t, err)

	core, err := engine.New(3, s, p, r, []buffer.NodeKind{buffer.TipStates, buffer.TipStates, buffer.Internal})
	require.NoError(t, err)

	core.SetTipStates(0, []int32{0, 1})
	core.SetTipStates(1, []int32{2, 3})
	core.SetEigenDecomposition(u, uinv, lambda, lambdaImag)
	require.NoError(t, core.SetFrequencies(freq))
	require.NoError(t, core.SetCategoryRates([]float64{1.0}))
	require.NoError(t, core.SetCategoryProportions([]float64{1.0}))
	return core
}

// TestEndToEndLogLikelihoodIsFiniteAndNegative checks the basic shape of
// a real evaluation: every pattern's log-likelihood is finite and at
// most zero (a probability can never exceed 1).
func TestEndToEndLogLikelihoodIsFiniteAndNegative(t *testing.T) {
	core := newJC69Core(t)
	defer core.Teardown()

	core.UpdateMatrices([]int{0, 1}, []float64{0.1, 0.2})
	core.UpdatePartials([]engine.Operation{{ChildA: 0, ChildB: 1, Parent: 2}})

	logLik := make([]float64, 2)
	core.CalculateLogLikelihoods(2, logLik)

	for i, ll := range logLik {
		require.False(t, math.IsNaN(ll) || math.IsInf(ll, 0), "pattern %d", i)
		require.LessOrEqual(t, ll, 0.0, "pattern %d", i)
	}
}

// TestRestoreUndoesAPerturbedBranchLength checks the O(1)-restore
// contract: after Store, perturbing a branch length and
// recomputing, then Restore, a subsequent CalculateLogLikelihoods with no
// further updates must match the originally stored log-likelihood exactly
// (restore undoes the live-index flip, it never resimulates it).
func TestRestoreUndoesAPerturbedBranchLength(t *testing.T) {
	core := newJC69Core(t)
	defer core.Teardown()

	ops := []engine.Operation{{ChildA: 0, ChildB: 1, Parent: 2}}
	core.UpdateMatrices([]int{0, 1}, []float64{0.1, 0.2})
	core.UpdatePartials(ops)

	original := make([]float64, 2)
	core.CalculateLogLikelihoods(2, original)
	core.Store()

	// Perturb: a much longer branch changes the likelihood.
	core.UpdateMatrices([]int{0}, []float64{5.0})
	core.UpdatePartials(ops)
	perturbed := make([]float64, 2)
	core.CalculateLogLikelihoods(2, perturbed)
	require.NotEqual(t, original, perturbed)

	core.Restore()
	restored := make([]float64, 2)
	core.CalculateLogLikelihoods(2, restored)
	require.Equal(t, original, restored)
}

// TestUnknownTipYieldsRowStochasticityFixedLogLikelihood drives the
// "unknown/gap" sentinel through the full pipeline: a two-tip JC69 tree
// where one tip is observed at state A and the other is unknown. Because
// the unknown tip contributes a uniform 1.0 to every ancestral state and
// JC69's P(t) is doubly stochastic, the result collapses to ln(0.25)
// regardless of branch length, the same invariant a tree with that tip
// pruned away entirely would produce.
func TestUnknownTipYieldsRowStochasticityFixedLogLikelihood(t *testing.T) {
	const s, p, r = 4, 1, 1
	q, freq := fixtures.JC69(s)
	u, uinv, lambda, lambdaImag, err := fixtures.Decompose(q, freq, s)
	require.NoError(t, err)

	core, err := engine.New(3, s, p, r, []buffer.NodeKind{buffer.TipStates, buffer.TipStates, buffer.Internal})
	require.NoError(t, err)
	defer core.Teardown()

	core.SetTipStates(0, []int32{0}) // observed state A
	core.SetTipStates(1, []int32{4}) // unknown/gap sentinel, S=4
	core.SetEigenDecomposition(u, uinv, lambda, lambdaImag)
	require.NoError(t, core.SetFrequencies(freq))
	require.NoError(t, core.SetCategoryRates([]float64{1.0}))
	require.NoError(t, core.SetCategoryProportions([]float64{1.0}))

	core.UpdateMatrices([]int{0, 1}, []float64{1.0, 1.0})
	core.UpdatePartials([]engine.Operation{{ChildA: 0, ChildB: 1, Parent: 2}})

	logLik := make([]float64, p)
	core.CalculateLogLikelihoods(2, logLik)
	require.InDelta(t, math.Log(0.25), logLik[0], 1e-8)
}

// TestEndToEndWithComplexEigenvaluePairStaysFinite drives a genuinely
// asymmetric generator (fixtures.Cyclic3, whose eigendecomposition
// contains a complex-conjugate pair) through the complete pipeline,
// checking that the complex-pair branch of the spectral assembly
// produces a finite, non-positive log-likelihood just like the
// real-eigenvalue path.
func TestEndToEndWithComplexEigenvaluePairStaysFinite(t *testing.T) {
	const s, p, r = 3, 2, 1
	q := fixtures.Cyclic3(0.6)
	u, uinv, lambda, lambdaImag, err := fixtures.DecomposeGeneral(q, s)
	require.NoError(t, err)

	hasComplexPair := false
	for _, im := range lambdaImag {
		if im != 0 {
			hasComplexPair = true
			break
		}
	}
	require.True(t, hasComplexPair)

	freq := []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}
	core, err := engine.New(3, s, p, r, []buffer.NodeKind{buffer.TipStates, buffer.TipStates, buffer.Internal})
	require.NoError(t, err)
	defer core.Teardown()

	core.SetTipStates(0, []int32{0, 1})
	core.SetTipStates(1, []int32{2, 0})
	core.SetEigenDecomposition(u, uinv, lambda, lambdaImag)
	require.NoError(t, core.SetFrequencies(freq))
	require.NoError(t, core.SetCategoryRates([]float64{1.0}))
	require.NoError(t, core.SetCategoryProportions([]float64{1.0}))

	core.UpdateMatrices([]int{0, 1}, []float64{0.4, 0.9})
	core.UpdatePartials([]engine.Operation{{ChildA: 0, ChildB: 1, Parent: 2}})

	logLik := make([]float64, p)
	core.CalculateLogLikelihoods(2, logLik)
	for i, ll := range logLik {
		require.False(t, math.IsNaN(ll) || math.IsInf(ll, 0), "pattern %d", i)
		require.LessOrEqual(t, ll, 0.0, "pattern %d", i)
	}
}

// TestSetFrequenciesRejectsNonSimplex checks the InitError-class
// validation on the Set* methods.
func TestSetFrequenciesRejectsNonSimplex(t *testing.T) {
	core, err := engine.New(1, 4, 1, 1, []buffer.NodeKind{buffer.Internal})
	require.NoError(t, err)
	defer core.Teardown()

	require.ErrorIs(t, core.SetFrequencies([]float64{0.5, 0.5, 0.5, 0.5}), engine.ErrBadFrequencies)
	require.ErrorIs(t, core.SetFrequencies([]float64{-0.1, 0.4, 0.4, 0.3}), engine.ErrBadFrequencies)
	require.NoError(t, core.SetFrequencies([]float64{0.25, 0.25, 0.25, 0.25}))
}

// TestSetCategoryRatesRejectsNonPositive checks the strictly-positive
// invariant on rate multipliers.
func TestSetCategoryRatesRejectsNonPositive(t *testing.T) {
	core, err := engine.New(1, 4, 1, 2, []buffer.NodeKind{buffer.Internal})
	require.NoError(t, err)
	defer core.Teardown()

	require.ErrorIs(t, core.SetCategoryRates([]float64{1.0, 0}), engine.ErrBadRates)
	require.NoError(t, core.SetCategoryRates([]float64{0.5, 1.5}))
}
