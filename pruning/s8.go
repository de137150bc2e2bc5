package pruning

// S=8 (covarion) kernels, with the fixed trip count written as a Go
// constant (see doc.go). Each row's accumulator is freshly zeroed: a
// partial sum must never carry over from one ancestral state's row into
// the next (see DESIGN.md).

const s8 = 8

// StatesStates8 is the S=8 specialization of StatesStates.
func StatesStates8(p, r int, x1, x2 []int32, m1, m2, out []float64) {
	for l := 0; l < r; l++ {
		lbase := l * s8 * s8
		for k := 0; k < p; k++ {
			obase := l*p*s8 + k*s8
			x1k, x2k := int(x1[k]), int(x2[k])
			switch {
			case x1k < s8 && x2k < s8:
				for i := 0; i < s8; i++ {
					out[obase+i] = m1[lbase+i*s8+x1k] * m2[lbase+i*s8+x2k]
				}
			case x1k < s8:
				for i := 0; i < s8; i++ {
					out[obase+i] = m1[lbase+i*s8+x1k]
				}
			case x2k < s8:
				for i := 0; i < s8; i++ {
					out[obase+i] = m2[lbase+i*s8+x2k]
				}
			default:
				for i := 0; i < s8; i++ {
					out[obase+i] = 1.0
				}
			}
		}
	}
}

// StatesPartials8 is the S=8 specialization of StatesPartials.
func StatesPartials8(p, r int, x1 []int32, pi2, m1, m2, out []float64) {
	for l := 0; l < r; l++ {
		lbase := l * s8 * s8
		for k := 0; k < p; k++ {
			obase := l*p*s8 + k*s8
			x1k := int(x1[k])
			for i := 0; i < s8; i++ {
				mrow := lbase + i*s8
				var sigma float64
				for j := 0; j < s8; j++ {
					sigma += m2[mrow+j] * pi2[obase+j]
				}
				if x1k < s8 {
					out[obase+i] = m1[mrow+x1k] * sigma
				} else {
					out[obase+i] = sigma
				}
			}
		}
	}
}

// PartialsPartials8 is the S=8 specialization of PartialsPartials.
func PartialsPartials8(p, r int, pi1, pi2, m1, m2, out []float64) {
	for l := 0; l < r; l++ {
		lbase := l * s8 * s8
		for k := 0; k < p; k++ {
			obase := l*p*s8 + k*s8
			for i := 0; i < s8; i++ {
				mrow := lbase + i*s8
				var sigma1, sigma2 float64
				for j := 0; j < s8; j++ {
					sigma1 += m1[mrow+j] * pi1[obase+j]
					sigma2 += m2[mrow+j] * pi2[obase+j]
				}
				out[obase+i] = sigma1 * sigma2
			}
		}
	}
}
