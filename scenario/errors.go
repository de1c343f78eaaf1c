package scenario

import "errors"

// Sentinel errors returned by the scenario package.
var (
	// ErrUnknownCoordinateSystem indicates coordinate_system was not one
	// of "latlon", "utm", or "row_col".
	ErrUnknownCoordinateSystem = errors.New("scenario: unknown coordinate_system")

	// ErrAmbiguousObstacles indicates both obstacles and obstacles_list
	// were present; a scenario file may specify at most one.
	ErrAmbiguousObstacles = errors.New("scenario: specify at most one of obstacles or obstacles_list")

	// ErrMissingModel indicates the model field (raster path) was empty.
	ErrMissingModel = errors.New("scenario: model path is required")
)
