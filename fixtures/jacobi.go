package fixtures

import (
	"fmt"
	"math"
)

// Jacobi diagonalizes the n*n symmetric matrix a (row-major, a[i*n+j]) by
// repeated classical Jacobi rotations, each pivoting on the largest
// off-diagonal entry; maxIter bounds the number of rotations. It returns the
// eigenvalues and the n*n matrix of eigenvectors as columns
// (vecs[i*n+k] is eigenvector k's i-th component), both ordered to match
// a's diagonal after convergence.
//
// Same algorithm as a classical Jacobi eigensolver (largest-off-diagonal
// pivot selection, the standard theta/t/c/s rotation formulas, rotation
// accumulated into an initially-identity eigenvector matrix), built
// against a flat []float64 rather than a Matrix interface type so it can
// operate directly on the S*S rate-matrix arrays this package builds.
func Jacobi(a []float64, n int, tol float64, maxIter int) (eigvals, vecs []float64, err error) {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(a[i*n+j]-a[j*n+i]) > tol {
				return nil, nil, fmt.Errorf("Jacobi: entries (%d,%d) and (%d,%d) disagree: %w", i, j, j, i, ErrNotSymmetric)
			}
		}
	}

	A := append([]float64(nil), a...)
	vecs = make([]float64, n*n)
	for i := 0; i < n; i++ {
		vecs[i*n+i] = 1.0
	}

	var iter int
	for iter = 0; iter < maxIter; iter++ {
		maxOff := 0.0
		p, q := 0, 1
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if off := math.Abs(A[i*n+j]); off > maxOff {
					maxOff = off
					p, q = i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		app, aqq, apq := A[p*n+p], A[q*n+q], A[p*n+q]
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq := A[i*n+p], A[i*n+q]
			A[i*n+p], A[p*n+i] = c*aip-s*aiq, c*aip-s*aiq
			A[i*n+q], A[q*n+i] = s*aip+c*aiq, s*aip+c*aiq
		}
		A[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		A[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		A[p*n+q] = 0
		A[q*n+p] = 0

		for i := 0; i < n; i++ {
			vip, viq := vecs[i*n+p], vecs[i*n+q]
			vecs[i*n+p] = c*vip - s*viq
			vecs[i*n+q] = s*vip + c*viq
		}
	}

	if iter == maxIter {
		return nil, nil, ErrEigenFailed
	}

	eigvals = make([]float64, n)
	for i := 0; i < n; i++ {
		eigvals[i] = A[i*n+i]
	}
	return eigvals, vecs, nil
}
