package fixtures

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Decompose diagonalizes a time-reversible S*S rate matrix q under its
// stationary distribution freq, returning the (U, Uinv, lambda,
// lambdaImag) quadruple engine.SetEigenDecomposition expects.
//
// Reversibility (freq[i]*q[i,j] == freq[j]*q[j,i]) lets B = D^1/2 Q D^-1/2
// be made symmetric, where D = diag(freq); diagonalizing the symmetric B
// via Jacobi gives an orthogonal eigenvector matrix V, from which
// U = D^-1/2 V and Uinv = V^T D^1/2 = U^-1. All eigenvalues are real.
func Decompose(q, freq []float64, s int) (u, uinv, lambda, lambdaImag []float64, err error) {
	if err := validFrequencies(freq); err != nil {
		return nil, nil, nil, nil, err
	}

	sqrtFreq := make([]float64, s)
	invSqrtFreq := make([]float64, s)
	for i := 0; i < s; i++ {
		sqrtFreq[i] = math.Sqrt(freq[i])
		invSqrtFreq[i] = 1.0 / sqrtFreq[i]
	}

	b := make([]float64, s*s)
	for i := 0; i < s; i++ {
		for j := 0; j < s; j++ {
			b[i*s+j] = sqrtFreq[i] * q[i*s+j] * invSqrtFreq[j]
		}
	}

	lambda, v, err := Jacobi(b, s, 1e-10, 200)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("fixtures.Decompose: %w", err)
	}

	u = make([]float64, s*s)
	uinv = make([]float64, s*s)
	for i := 0; i < s; i++ {
		for k := 0; k < s; k++ {
			u[i*s+k] = invSqrtFreq[i] * v[i*s+k]
			uinv[k*s+i] = v[i*s+k] * sqrtFreq[i]
		}
	}
	lambdaImag = make([]float64, s)
	return u, uinv, lambda, lambdaImag, nil
}

// DecomposeGeneral diagonalizes an arbitrary (not necessarily reversible)
// S*S rate matrix q via gonum's general eigendecomposition, for generators
// like Cyclic3 that the symmetrization trick does not apply to. Complex-
// conjugate eigenvalue pairs are converted to the real invariant-subspace
// basis (column k = Re(v), column k+1 = Im(v)) that model.Params expects,
// and Uinv is obtained by direct inversion of the resulting real U.
func DecomposeGeneral(q []float64, s int) (u, uinv, lambda, lambdaImag []float64, err error) {
	m := mat.NewDense(s, s, append([]float64(nil), q...))
	var eig mat.Eigen
	if ok := eig.Factorize(m, mat.EigenRight); !ok {
		return nil, nil, nil, nil, ErrEigenFailed
	}
	vals := eig.Values(nil)
	var vecs mat.CDense
	eig.VectorsTo(&vecs)

	lambda = make([]float64, s)
	lambdaImag = make([]float64, s)
	for k := 0; k < s; k++ {
		lambda[k] = real(vals[k])
		lambdaImag[k] = imag(vals[k])
	}

	u = make([]float64, s*s)
	for k := 0; k < s; {
		if lambdaImag[k] == 0 {
			for i := 0; i < s; i++ {
				u[i*s+k] = real(vecs.At(i, k))
			}
			k++
			continue
		}
		for i := 0; i < s; i++ {
			c := vecs.At(i, k)
			u[i*s+k] = real(c)
			u[i*s+k+1] = imag(c)
		}
		k += 2
	}

	uinv, err = invert(u, s)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("fixtures.DecomposeGeneral: %w", err)
	}
	return u, uinv, lambda, lambdaImag, nil
}
