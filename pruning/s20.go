package pruning

// S=20 (amino acid) kernels, with the fixed trip count written as a Go
// constant (see doc.go).

const s20 = 20

// StatesStates20 is the S=20 specialization of StatesStates.
func StatesStates20(p, r int, x1, x2 []int32, m1, m2, out []float64) {
	for l := 0; l < r; l++ {
		lbase := l * s20 * s20
		for k := 0; k < p; k++ {
			obase := l*p*s20 + k*s20
			x1k, x2k := int(x1[k]), int(x2[k])
			switch {
			case x1k < s20 && x2k < s20:
				for i := 0; i < s20; i++ {
					out[obase+i] = m1[lbase+i*s20+x1k] * m2[lbase+i*s20+x2k]
				}
			case x1k < s20:
				for i := 0; i < s20; i++ {
					out[obase+i] = m1[lbase+i*s20+x1k]
				}
			case x2k < s20:
				for i := 0; i < s20; i++ {
					out[obase+i] = m2[lbase+i*s20+x2k]
				}
			default:
				for i := 0; i < s20; i++ {
					out[obase+i] = 1.0
				}
			}
		}
	}
}

// StatesPartials20 is the S=20 specialization of StatesPartials.
func StatesPartials20(p, r int, x1 []int32, pi2, m1, m2, out []float64) {
	for l := 0; l < r; l++ {
		lbase := l * s20 * s20
		for k := 0; k < p; k++ {
			obase := l*p*s20 + k*s20
			x1k := int(x1[k])
			for i := 0; i < s20; i++ {
				mrow := lbase + i*s20
				var sigma float64
				for j := 0; j < s20; j++ {
					sigma += m2[mrow+j] * pi2[obase+j]
				}
				if x1k < s20 {
					out[obase+i] = m1[mrow+x1k] * sigma
				} else {
					out[obase+i] = sigma
				}
			}
		}
	}
}

// PartialsPartials20 is the S=20 specialization of PartialsPartials.
func PartialsPartials20(p, r int, pi1, pi2, m1, m2, out []float64) {
	for l := 0; l < r; l++ {
		lbase := l * s20 * s20
		for k := 0; k < p; k++ {
			obase := l*p*s20 + k*s20
			for i := 0; i < s20; i++ {
				mrow := lbase + i*s20
				var sigma1, sigma2 float64
				for j := 0; j < s20; j++ {
					sigma1 += m1[mrow+j] * pi1[obase+j]
					sigma2 += m2[mrow+j] * pi2[obase+j]
				}
				out[obase+i] = sigma1 * sigma2
			}
		}
	}
}
