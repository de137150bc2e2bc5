package model

// Params is the global substitution-model state. One instance is "live";
// the engine keeps a second instance as a shadow for Store/Restore.
type Params struct {
	S int // alphabet size
	R int // rate-category count

	Frequencies         []float64 // stationary distribution, length S
	CategoryRates       []float64 // per-category scalar multipliers, length R
	CategoryProportions []float64 // mixture weights, length R

	EigenValues     []float64 // real parts, length S
	EigenValuesImag []float64 // imaginary parts (0 for real eigenvalues), length S

	// CMatrix is the precomputed tensor C[i,j,k] = U[i,k]*Uinv[k,j],
	// flattened as C[i*S*S + j*S + k], so that
	// P(t)[i,j] = sum_k CMatrix[i*S*S+j*S+k] * exp(lambda_k * t).
	CMatrix []float64
}

// New allocates a zeroed Params for the given alphabet size and rate
// category count. Dimension validation (S >= 2, R >= 1) is the caller's
// (engine's) responsibility; model itself never rejects a shape.
func New(s, r int) *Params {
	return &Params{
		S:                   s,
		R:                   r,
		Frequencies:         make([]float64, s),
		CategoryRates:       make([]float64, r),
		CategoryProportions: make([]float64, r),
		EigenValues:         make([]float64, s),
		EigenValuesImag:     make([]float64, s),
		CMatrix:             make([]float64, s*s*s),
	}
}

// CopyInto deep-copies p's contents into dst, which must already be sized
// for the same (S, R). Used by the engine's Store() to snapshot the live
// Params into the shadow slot without allocating.
func (p *Params) CopyInto(dst *Params) {
	copy(dst.Frequencies, p.Frequencies)
	copy(dst.CategoryRates, p.CategoryRates)
	copy(dst.CategoryProportions, p.CategoryProportions)
	copy(dst.EigenValues, p.EigenValues)
	copy(dst.EigenValuesImag, p.EigenValuesImag)
	copy(dst.CMatrix, p.CMatrix)
}

// SetEigenDecomposition recomputes CMatrix from U, Uinv and copies the
// eigenvalues. U and Uinv are S x S row-major matrices; lambda and
// lambdaImag have length S.
//
// For a real eigenvalue index k, CMatrix's k-th plane is the ordinary
// outer product U[:,k] * Uinv[k,:]. For a complex-conjugate pair
// (k, k+1) with imaginary parts +b, -b, the pair's two planes are instead
// the rotation decomposition
//
//	plane(k)   = U[:,k]*Uinv[k,:]   + U[:,k+1]*Uinv[k+1,:]
//	plane(k+1) = U[:,k]*Uinv[k+1,:] - U[:,k+1]*Uinv[k,:]
//
// so that transition.Update can stay a single uniform dot-product loop
// P[i,j] = sum_k CMatrix[i,j,k]*tmp[k] with tmp[k]=exp(a*t)*cos(b*t) and
// tmp[k+1]=exp(a*t)*sin(b*t) for the pair — algebraically identical to
// forming exp(a*t)*(cos(b*t)*I + sin(b*t)/b*(A-aI)) against the real
// eigenvector matrices, just precomputed once here instead of on every
// branch-matrix update.
func (p *Params) SetEigenDecomposition(u, uinv, lambda, lambdaImag []float64) {
	s := p.S
	copy(p.EigenValues, lambda)
	if lambdaImag != nil {
		copy(p.EigenValuesImag, lambdaImag)
	} else {
		for i := range p.EigenValuesImag {
			p.EigenValuesImag[i] = 0
		}
	}

	outer := func(colU, rowUinv int) []float64 {
		plane := make([]float64, s*s)
		for i := 0; i < s; i++ {
			ui := u[i*s+colU]
			for j := 0; j < s; j++ {
				plane[i*s+j] = ui * uinv[rowUinv*s+j]
			}
		}
		return plane
	}

	for k := 0; k < s; {
		if p.EigenValuesImag[k] == 0 {
			plane := outer(k, k)
			for i := 0; i < s; i++ {
				for j := 0; j < s; j++ {
					p.CMatrix[i*s*s+j*s+k] = plane[i*s+j]
				}
			}
			k++
			continue
		}

		// Complex-conjugate pair at (k, k+1).
		d1 := outer(k, k)
		d2 := outer(k+1, k+1)
		cross1 := outer(k, k+1) // U[:,k] * Uinv[k+1,:]
		cross2 := outer(k+1, k) // U[:,k+1] * Uinv[k,:]
		for i := 0; i < s; i++ {
			for j := 0; j < s; j++ {
				idx := i*s + j
				p.CMatrix[i*s*s+j*s+k] = d1[idx] + d2[idx]
				p.CMatrix[i*s*s+j*s+k+1] = cross1[idx] - cross2[idx]
			}
		}
		k += 2
	}
}
