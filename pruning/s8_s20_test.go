package pruning_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phylokit/phylocore/pruning"
)

// rowStochastic builds an n*n matrix with a distinct-but-normalized row
// pattern, enough to exercise every lane of a specialized kernel without
// being symmetric or uniform.
func rowStochastic(n int) []float64 {
	m := make([]float64, n*n)
	for i := 0; i < n; i++ {
		total := 0.0
		for j := 0; j < n; j++ {
			v := float64((i+1)*(j+1)%7 + 1)
			m[i*n+j] = v
			total += v
		}
		for j := 0; j < n; j++ {
			m[i*n+j] /= total
		}
	}
	return m
}

func TestStatesStates8MatchesGeneric(t *testing.T) {
	m1, m2 := rowStochastic(8), rowStochastic(8)
	x1, x2 := []int32{3}, []int32{5}

	want := make([]float64, 8)
	pruning.StatesStates(8, 1, 1, x1, x2, m1, m2, want)
	got := make([]float64, 8)
	pruning.StatesStates8(1, 1, x1, x2, m1, m2, got)

	require.InDeltaSlice(t, want, got, 1e-12)
}

func TestPartialsPartials8MatchesGeneric(t *testing.T) {
	m1, m2 := rowStochastic(8), rowStochastic(8)
	pi1 := make([]float64, 8)
	pi2 := make([]float64, 8)
	for i := range pi1 {
		pi1[i] = float64(i+1) / 36.0
		pi2[i] = float64(8-i) / 36.0
	}

	want := make([]float64, 8)
	pruning.PartialsPartials(8, 1, 1, pi1, pi2, m1, m2, want)
	got := make([]float64, 8)
	pruning.PartialsPartials8(1, 1, pi1, pi2, m1, m2, got)

	require.InDeltaSlice(t, want, got, 1e-12)
}

func TestStatesPartials20MatchesGeneric(t *testing.T) {
	m1, m2 := rowStochastic(20), rowStochastic(20)
	x1 := []int32{7}
	pi2 := make([]float64, 20)
	for i := range pi2 {
		pi2[i] = float64(i+1) / 210.0
	}

	want := make([]float64, 20)
	pruning.StatesPartials(20, 1, 1, x1, pi2, m1, m2, want)
	got := make([]float64, 20)
	pruning.StatesPartials20(1, 1, x1, pi2, m1, m2, got)

	require.InDeltaSlice(t, want, got, 1e-12)
}
