package transition

import (
	"math"

	"github.com/phylokit/phylocore/buffer"
	"github.com/phylokit/phylocore/model"
)

// MinProb is the floor applied to any transition-probability cell that
// comes out negative due to floating-point error in the spectral
// reconstruction.
const MinProb = 1e-10

// Update assembles node n's transition-probability matrix P(t) for the
// given branch length, one rate category at a time, and writes it into
// the node's alternate matrix buffer, then flips.
//
// Per category l: tmp[k] = exp(lambda_k * branchLength * categoryRates[l])
// for real eigenvalues; for a complex-conjugate pair (k, k+1), tmp[k] and
// tmp[k+1] carry the cos/sin rotation factors instead (see
// model.Params.SetEigenDecomposition for why this keeps the assembly a
// single dot-product loop). Each cell is then
//
//	P[i,j] = sum_k CMatrix[i,j,k] * tmp[k]
//
// floored at MinProb if negative.
func Update(pool *buffer.Pool, params *model.Params, n int, branchLength float64) {
	s := params.S
	r := params.R
	out := pool.AltMatrix(n)
	tmp := make([]float64, s)

	for l := 0; l < r; l++ {
		rate := params.CategoryRates[l]
		t := branchLength * rate

		for k := 0; k < s; {
			if params.EigenValuesImag[k] == 0 {
				tmp[k] = math.Exp(params.EigenValues[k] * t)
				k++
				continue
			}
			a := params.EigenValues[k]
			b := params.EigenValuesImag[k]
			expat := math.Exp(a * t)
			tmp[k] = expat * math.Cos(b*t)
			tmp[k+1] = expat * math.Sin(b*t)
			k += 2
		}

		base := l * s * s
		for i := 0; i < s; i++ {
			for j := 0; j < s; j++ {
				var sum float64
				cbase := i*s*s + j*s
				for k := 0; k < s; k++ {
					sum += params.CMatrix[cbase+k] * tmp[k]
				}
				if sum < 0 {
					sum = MinProb
				}
				out[base+i*s+j] = sum
			}
		}
	}

	pool.FlipMatrix(n)
}
