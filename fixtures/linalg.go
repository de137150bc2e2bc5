package fixtures

import "fmt"

// invert computes the inverse of the n*n row-major matrix a via Doolittle
// LU decomposition and forward/backward substitution against each basis
// column.
func invert(a []float64, n int) ([]float64, error) {
	l := make([]float64, n*n)
	u := make([]float64, n*n)
	for i := 0; i < n; i++ {
		l[i*n+i] = 1
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				sum += l[i*n+k] * u[k*n+j]
			}
			u[i*n+j] = a[i*n+j] - sum
		}
		for j := i + 1; j < n; j++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				sum += l[j*n+k] * u[k*n+i]
			}
			pivot := u[i*n+i]
			if pivot == 0 {
				return nil, fmt.Errorf("invert: zero pivot at %d: %w", i, ErrSingular)
			}
			l[j*n+i] = (a[j*n+i] - sum) / pivot
		}
	}

	inv := make([]float64, n*n)
	y := make([]float64, n)
	x := make([]float64, n)
	for col := 0; col < n; col++ {
		for i := 0; i < n; i++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				sum += l[i*n+k] * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		for i := n - 1; i >= 0; i-- {
			sum := 0.0
			for k := i + 1; k < n; k++ {
				sum += u[i*n+k] * x[k]
			}
			pivot := u[i*n+i]
			if pivot == 0 {
				return nil, fmt.Errorf("invert: zero pivot at %d: %w", i, ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}
		for i := 0; i < n; i++ {
			inv[i*n+col] = x[i]
		}
	}
	return inv, nil
}
