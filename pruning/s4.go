package pruning

// S=4 (nucleotide) kernels, hand-unrolled on the i and inner-j loops for
// the hot path of small-alphabet evaluations.

// StatesStates4 is the S=4 specialization of StatesStates.
func StatesStates4(p, r int, x1, x2 []int32, m1, m2, out []float64) {
	const s = 4
	for l := 0; l < r; l++ {
		lbase := l * 16
		for k := 0; k < p; k++ {
			obase := l*p*s + k*s
			x1k, x2k := int(x1[k]), int(x2[k])
			switch {
			case x1k < s && x2k < s:
				out[obase] = m1[lbase+x1k] * m2[lbase+x2k]
				out[obase+1] = m1[lbase+4+x1k] * m2[lbase+4+x2k]
				out[obase+2] = m1[lbase+8+x1k] * m2[lbase+8+x2k]
				out[obase+3] = m1[lbase+12+x1k] * m2[lbase+12+x2k]
			case x1k < s:
				out[obase] = m1[lbase+x1k]
				out[obase+1] = m1[lbase+4+x1k]
				out[obase+2] = m1[lbase+8+x1k]
				out[obase+3] = m1[lbase+12+x1k]
			case x2k < s:
				out[obase] = m2[lbase+x2k]
				out[obase+1] = m2[lbase+4+x2k]
				out[obase+2] = m2[lbase+8+x2k]
				out[obase+3] = m2[lbase+12+x2k]
			default:
				out[obase] = 1.0
				out[obase+1] = 1.0
				out[obase+2] = 1.0
				out[obase+3] = 1.0
			}
		}
	}
}

// StatesPartials4 is the S=4 specialization of StatesPartials.
func StatesPartials4(p, r int, x1 []int32, pi2, m1, m2, out []float64) {
	const s = 4
	for l := 0; l < r; l++ {
		lbase := l * 16
		for k := 0; k < p; k++ {
			obase := l*p*s + k*s
			x1k := int(x1[k])

			sigma0 := m2[lbase]*pi2[obase] + m2[lbase+1]*pi2[obase+1] + m2[lbase+2]*pi2[obase+2] + m2[lbase+3]*pi2[obase+3]
			sigma1 := m2[lbase+4]*pi2[obase] + m2[lbase+5]*pi2[obase+1] + m2[lbase+6]*pi2[obase+2] + m2[lbase+7]*pi2[obase+3]
			sigma2 := m2[lbase+8]*pi2[obase] + m2[lbase+9]*pi2[obase+1] + m2[lbase+10]*pi2[obase+2] + m2[lbase+11]*pi2[obase+3]
			sigma3 := m2[lbase+12]*pi2[obase] + m2[lbase+13]*pi2[obase+1] + m2[lbase+14]*pi2[obase+2] + m2[lbase+15]*pi2[obase+3]

			if x1k < s {
				out[obase] = m1[lbase+x1k] * sigma0
				out[obase+1] = m1[lbase+4+x1k] * sigma1
				out[obase+2] = m1[lbase+8+x1k] * sigma2
				out[obase+3] = m1[lbase+12+x1k] * sigma3
			} else {
				out[obase] = sigma0
				out[obase+1] = sigma1
				out[obase+2] = sigma2
				out[obase+3] = sigma3
			}
		}
	}
}

// PartialsPartials4 is the S=4 specialization of PartialsPartials.
func PartialsPartials4(p, r int, pi1, pi2, m1, m2, out []float64) {
	const s = 4
	for l := 0; l < r; l++ {
		lbase := l * 16
		for k := 0; k < p; k++ {
			obase := l*p*s + k*s

			sum1 := m1[lbase]*pi1[obase] + m1[lbase+1]*pi1[obase+1] + m1[lbase+2]*pi1[obase+2] + m1[lbase+3]*pi1[obase+3]
			sum2 := m2[lbase]*pi2[obase] + m2[lbase+1]*pi2[obase+1] + m2[lbase+2]*pi2[obase+2] + m2[lbase+3]*pi2[obase+3]
			out[obase] = sum1 * sum2

			sum1 = m1[lbase+4]*pi1[obase] + m1[lbase+5]*pi1[obase+1] + m1[lbase+6]*pi1[obase+2] + m1[lbase+7]*pi1[obase+3]
			sum2 = m2[lbase+4]*pi2[obase] + m2[lbase+5]*pi2[obase+1] + m2[lbase+6]*pi2[obase+2] + m2[lbase+7]*pi2[obase+3]
			out[obase+1] = sum1 * sum2

			sum1 = m1[lbase+8]*pi1[obase] + m1[lbase+9]*pi1[obase+1] + m1[lbase+10]*pi1[obase+2] + m1[lbase+11]*pi1[obase+3]
			sum2 = m2[lbase+8]*pi2[obase] + m2[lbase+9]*pi2[obase+1] + m2[lbase+10]*pi2[obase+2] + m2[lbase+11]*pi2[obase+3]
			out[obase+2] = sum1 * sum2

			sum1 = m1[lbase+12]*pi1[obase] + m1[lbase+13]*pi1[obase+1] + m1[lbase+14]*pi1[obase+2] + m1[lbase+15]*pi1[obase+3]
			sum2 = m2[lbase+12]*pi2[obase] + m2[lbase+13]*pi2[obase+1] + m2[lbase+14]*pi2[obase+2] + m2[lbase+15]*pi2[obase+3]
			out[obase+3] = sum1 * sum2
		}
	}
}
