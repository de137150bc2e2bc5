package fixtures

import "errors"

// Sentinel errors for the fixtures package.
var (
	// ErrNotSymmetric is returned when Jacobi is asked to diagonalize a
	// matrix whose (i,j) and (j,i) entries disagree beyond tol.
	ErrNotSymmetric = errors.New("fixtures: matrix is not symmetric")

	// ErrEigenFailed is returned when a Jacobi sweep fails to converge
	// within maxIter iterations.
	ErrEigenFailed = errors.New("fixtures: eigen decomposition did not converge")

	// ErrSingular is returned when matrix inversion hits a zero pivot.
	ErrSingular = errors.New("fixtures: matrix is singular")

	// ErrBadFrequencies is returned when a model builder is given a
	// frequency vector that is not a valid stationary distribution.
	ErrBadFrequencies = errors.New("fixtures: frequencies must be positive and sum to 1")
)
