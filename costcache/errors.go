package costcache

import "errors"

// Sentinel errors returned by the costcache package.
var (
	// ErrNoGoal indicates BuildHeuristic was called before any edge costs
	// had been built, or heuristic values were read before any goal had
	// been cached.
	ErrNoGoal = errors.New("costcache: no goal cached")

	// ErrBadWeights indicates a weighting vector with all-zero or negative
	// components was supplied.
	ErrBadWeights = errors.New("costcache: weights must be non-negative with at least one positive component")

	// ErrOutOfBounds indicates a query cell outside the cached grid.
	ErrOutOfBounds = errors.New("costcache: coordinate out of bounds")
)
