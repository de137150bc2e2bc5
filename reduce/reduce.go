package reduce

import "math"

// Reduce computes, for each pattern k, s_k = sum_i frequencies[i] *
// integrated[k*S+i] and logLik[k] = ln(s_k). A non-positive s_k yields
// -Inf, never an error.
func Reduce(s, p int, frequencies, integrated, logLik []float64) {
	for k := 0; k < p; k++ {
		base := k * s
		var sum float64
		for i := 0; i < s; i++ {
			sum += frequencies[i] * integrated[base+i]
		}
		if sum <= 0 {
			logLik[k] = math.Inf(-1)
			continue
		}
		logLik[k] = math.Log(sum)
	}
}
