package mixture

// Integrate collapses the root's R*P*S partials into a P*S vector
// weighted by categoryProportions, accumulating in a single pass per
// ("l=0 initializes, l>0 adds, to amortize writes").
func Integrate(s, p, r int, proportions []float64, rootPartials []float64, out []float64) {
	for k := 0; k < p; k++ {
		obase := k * s
		for i := 0; i < s; i++ {
			out[obase+i] = proportions[0] * rootPartials[obase+i]
		}
	}
	for l := 1; l < r; l++ {
		w := proportions[l]
		lbase := l * p * s
		for k := 0; k < p; k++ {
			obase := k * s
			rbase := lbase + obase
			for i := 0; i < s; i++ {
				out[obase+i] += w * rootPartials[rbase+i]
			}
		}
	}
}
