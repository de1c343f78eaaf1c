package solver

import "errors"

// Sentinel errors returned by the solver package.
var (
	// ErrEndpointBlocked indicates the source or target cell is not
	// passable.
	ErrEndpointBlocked = errors.New("solver: endpoint is not passable")

	// ErrNoPath indicates source and target lie in disconnected components.
	ErrNoPath = errors.New("solver: no connected path between source and target")

	// ErrCacheInvalid indicates a solve was requested while the Solver is
	// not in the ready state (edge costs or heuristic are missing or
	// stale).
	ErrCacheInvalid = errors.New("solver: cost cache is not ready for this goal")

	// ErrCancelled indicates a solve was cancelled or timed out before
	// completion.
	ErrCancelled = errors.New("solver: solve was cancelled")

	// ErrNotRunnable indicates an operation was attempted from a state that
	// does not permit it (e.g. CacheEdges called while running).
	ErrNotRunnable = errors.New("solver: operation not permitted in current state")

	// ErrEmptySequence indicates SolveSequence was called with fewer than
	// two waypoints.
	ErrEmptySequence = errors.New("solver: waypoint sequence must have at least two points")
)
