package pruning_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phylokit/phylocore/pruning"
)

// nonTrivialMatrix4 is an arbitrary-but-fixed 4x4 row-stochastic matrix,
// used to check the S=4 specializations agree with the generic kernel on
// something more demanding than an identity matrix.
func nonTrivialMatrix4() []float64 {
	return []float64{
		0.70, 0.10, 0.10, 0.10,
		0.05, 0.85, 0.05, 0.05,
		0.20, 0.20, 0.50, 0.10,
		0.25, 0.25, 0.25, 0.25,
	}
}

func TestStatesStates4MatchesGeneric(t *testing.T) {
	m1, m2 := nonTrivialMatrix4(), nonTrivialMatrix4()
	x1, x2 := []int32{2}, []int32{0}

	want := make([]float64, 4)
	pruning.StatesStates(4, 1, 1, x1, x2, m1, m2, want)

	got := make([]float64, 4)
	pruning.StatesStates4(1, 1, x1, x2, m1, m2, got)

	require.InDeltaSlice(t, want, got, 1e-12)
}

// TestStatesStates4MatchesGenericWithUnknownTip checks that the S=4
// specialization agrees with the generic kernel on the "unknown/gap"
// sentinel (a tip state value >= S), not just on ordinary observed
// states.
func TestStatesStates4MatchesGenericWithUnknownTip(t *testing.T) {
	m1, m2 := nonTrivialMatrix4(), nonTrivialMatrix4()
	x1, x2 := []int32{1}, []int32{4}

	want := make([]float64, 4)
	pruning.StatesStates(4, 1, 1, x1, x2, m1, m2, want)

	got := make([]float64, 4)
	pruning.StatesStates4(1, 1, x1, x2, m1, m2, got)

	require.InDeltaSlice(t, want, got, 1e-12)
}

func TestStatesPartials4MatchesGeneric(t *testing.T) {
	m1, m2 := nonTrivialMatrix4(), nonTrivialMatrix4()
	x1 := []int32{1}
	pi2 := []float64{0.1, 0.2, 0.3, 0.4}

	want := make([]float64, 4)
	pruning.StatesPartials(4, 1, 1, x1, pi2, m1, m2, want)

	got := make([]float64, 4)
	pruning.StatesPartials4(1, 1, x1, pi2, m1, m2, got)

	require.InDeltaSlice(t, want, got, 1e-12)
}

func TestPartialsPartials4MatchesGeneric(t *testing.T) {
	m1, m2 := nonTrivialMatrix4(), nonTrivialMatrix4()
	pi1 := []float64{0.1, 0.2, 0.3, 0.4}
	pi2 := []float64{0.4, 0.3, 0.2, 0.1}

	want := make([]float64, 4)
	pruning.PartialsPartials(4, 1, 1, pi1, pi2, m1, m2, want)

	got := make([]float64, 4)
	pruning.PartialsPartials4(1, 1, pi1, pi2, m1, m2, got)

	require.InDeltaSlice(t, want, got, 1e-12)
}
