package fixtures

import (
	"fmt"
	"math"
)

// fillDiagonal sets each row's diagonal entry of the n*n row-major rate
// matrix q so the row sums to zero, the standard continuous-time Markov
// generator normalization.
func fillDiagonal(q []float64, n int) {
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			if j != i {
				sum += q[i*n+j]
			}
		}
		q[i*n+i] = -sum
	}
}

func validFrequencies(freq []float64) error {
	sum := 0.0
	for _, f := range freq {
		if f <= 0 || math.IsNaN(f) {
			return ErrBadFrequencies
		}
		sum += f
	}
	if math.Abs(sum-1.0) > 1e-6 {
		return ErrBadFrequencies
	}
	return nil
}

// JC69 builds the Jukes-Cantor rate matrix for an S-state alphabet: every
// off-diagonal rate equal, frequencies uniform. Returns (Q, frequencies).
func JC69(s int) (q, freq []float64) {
	q = make([]float64, s*s)
	freq = make([]float64, s)
	rate := 1.0 / float64(s-1)
	for i := 0; i < s; i++ {
		freq[i] = 1.0 / float64(s)
		for j := 0; j < s; j++ {
			if i != j {
				q[i*s+j] = rate
			}
		}
	}
	fillDiagonal(q, s)
	return q, freq
}

// GTR builds a general time-reversible rate matrix from a stationary
// frequency vector and an upper-triangular exchangeability vector
// (length S*(S-1)/2, entries in row-major upper-triangular order:
// (0,1),(0,2),...,(0,S-1),(1,2),...). Q[i,j] = exch(i,j)*freq[j] for i!=j,
// which is reversible by construction: freq[i]*Q[i,j] == freq[j]*Q[j,i].
func GTR(freq, exch []float64) ([]float64, error) {
	s := len(freq)
	if err := validFrequencies(freq); err != nil {
		return nil, err
	}
	want := s * (s - 1) / 2
	if len(exch) != want {
		return nil, fmt.Errorf("fixtures.GTR: need %d exchangeabilities for S=%d, got %d", want, s, len(exch))
	}

	q := make([]float64, s*s)
	idx := 0
	for i := 0; i < s; i++ {
		for j := i + 1; j < s; j++ {
			r := exch[idx]
			idx++
			q[i*s+j] = r * freq[j]
			q[j*s+i] = r * freq[i]
		}
	}
	fillDiagonal(q, s)
	return q, nil
}

// Covarion8 builds an 8-state switching-rate generator: states 0-3 are
// the "fast" nucleotide class and 4-7 the "slow" class, with substitution
// only within a class (JC69-shaped) and a single symmetric switching rate
// between a state and its counterpart in the other class. Every
// off-diagonal entry is assigned equally in both directions, so Q is
// itself symmetric and therefore reversible under the uniform stationary
// distribution — it diagonalizes via the ordinary symmetrization path
// (Decompose), not DecomposeGeneral.
func Covarion8(substRate, switchRate float64) []float64 {
	const n = 8
	q := make([]float64, n*n)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i != j {
				q[i*n+j] = substRate
				q[(i+4)*n+(j+4)] = substRate
			}
		}
	}
	for i := 0; i < 4; i++ {
		q[i*n+(i+4)] = switchRate
		q[(i+4)*n+i] = switchRate
	}
	fillDiagonal(q, n)
	return q
}

// Cyclic3 builds a 3-state directed-cycle generator: state i transitions
// only to state (i+1) mod 3, at the given rate, with no reverse edge. This
// generator is asymmetric and admits no frequency vector under which it
// satisfies detailed balance, so it cannot take the symmetrization path
// and must be diagonalized via DecomposeGeneral. As a circulant matrix
// its eigenvalues are rate*(omega^k - 1) for the cube roots of unity
// omega^k, k=0,1,2: k=0 gives the real eigenvalue 0, and k=1,2 form a
// genuine complex-conjugate pair with nonzero imaginary part.
func Cyclic3(rate float64) []float64 {
	const n = 3
	q := make([]float64, n*n)
	for i := 0; i < n; i++ {
		q[i*n+(i+1)%n] = rate
	}
	fillDiagonal(q, n)
	return q
}

// Identity returns the S*S zero matrix: the degenerate rate matrix whose
// every eigenvalue is zero, used to exercise the "branch length has no
// effect, P(t) stays the identity-like fixed point" edge case.
func Identity(s int) []float64 {
	return make([]float64, s*s)
}
