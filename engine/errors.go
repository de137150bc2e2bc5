package engine

import "errors"

// Sentinel errors for the engine package.
var (
	// ErrBadDimensions is returned when N, P, or R is <= 0 or S < 2,
	// mirroring buffer.ErrZeroDimension at the controller boundary.
	ErrBadDimensions = errors.New("engine: dimensions must be > 0 and S >= 2")

	// ErrBadFrequencies is returned when frequencies do not sum to ~1 or
	// contain a negative entry.
	ErrBadFrequencies = errors.New("engine: frequencies must be non-negative and sum to 1")

	// ErrBadProportions is returned when category proportions do not sum
	// to ~1 or contain a negative entry.
	ErrBadProportions = errors.New("engine: category proportions must be non-negative and sum to 1")

	// ErrBadRates is returned when a category rate is not strictly positive.
	ErrBadRates = errors.New("engine: category rates must be > 0")
)

// simplexTolerance bounds how far a frequency/proportion vector's sum may
// drift from 1.0 before it is rejected.
const simplexTolerance = 1e-6
