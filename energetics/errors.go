package energetics

import "errors"

// Sentinel errors returned by energetics option constructors.
var (
	// ErrBadSpeed indicates a non-positive speed was supplied to an option.
	ErrBadSpeed = errors.New("energetics: speed must be positive")

	// ErrBadCoefficient indicates a negative coefficient was supplied where
	// only non-negative values are physically meaningful.
	ErrBadCoefficient = errors.New("energetics: coefficient must be non-negative")
)
