package pruning

// The "unknown/gap" sentinel in a tip's state array is any state value
// >= S; there is no named constant for it. Callers should use S itself as
// the canonical sentinel.

// StatesStates computes the parent's partials when both children are
// state-encoded tips. x1, x2 have length P; m1, m2 are each
// R*S*S; out is R*P*S.
func StatesStates(s, p, r int, x1, x2 []int32, m1, m2, out []float64) {
	for l := 0; l < r; l++ {
		lbase := l * s * s
		for k := 0; k < p; k++ {
			obase := l*p*s + k*s
			x1k, x2k := int(x1[k]), int(x2[k])
			switch {
			case x1k < s && x2k < s:
				for i := 0; i < s; i++ {
					out[obase+i] = m1[lbase+i*s+x1k] * m2[lbase+i*s+x2k]
				}
			case x1k < s:
				for i := 0; i < s; i++ {
					out[obase+i] = m1[lbase+i*s+x1k]
				}
			case x2k < s:
				for i := 0; i < s; i++ {
					out[obase+i] = m2[lbase+i*s+x2k]
				}
			default:
				for i := 0; i < s; i++ {
					out[obase+i] = 1.0
				}
			}
		}
	}
}

// StatesPartials computes the parent's partials when child 1 is a
// state-encoded tip and child 2 carries a partials vector.
func StatesPartials(s, p, r int, x1 []int32, pi2, m1, m2, out []float64) {
	for l := 0; l < r; l++ {
		lbase := l * s * s
		for k := 0; k < p; k++ {
			obase := l*p*s + k*s
			x1k := int(x1[k])
			for i := 0; i < s; i++ {
				mrow := lbase + i*s
				var sigma float64
				for j := 0; j < s; j++ {
					sigma += m2[mrow+j] * pi2[obase+j]
				}
				if x1k < s {
					out[obase+i] = m1[mrow+x1k] * sigma
				} else {
					out[obase+i] = sigma
				}
			}
		}
	}
}

// PartialsPartials computes the parent's partials when both children
// carry partials vectors.
func PartialsPartials(s, p, r int, pi1, pi2, m1, m2, out []float64) {
	for l := 0; l < r; l++ {
		lbase := l * s * s
		for k := 0; k < p; k++ {
			obase := l*p*s + k*s
			for i := 0; i < s; i++ {
				mrow := lbase + i*s
				var sigma1, sigma2 float64
				for j := 0; j < s; j++ {
					sigma1 += m1[mrow+j] * pi1[obase+j]
					sigma2 += m2[mrow+j] * pi2[obase+j]
				}
				out[obase+i] = sigma1 * sigma2
			}
		}
	}
}
