package grid

import "errors"

// Sentinel errors returned by the grid package. Callers should branch with
// errors.Is; context (which cell, which file) is attached with fmt.Errorf's
// %w at the call site rather than baked into the sentinel.
var (
	// ErrOutOfBounds indicates a cell or point coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrUnsupportedProjection indicates a lat/long query was issued against
	// a raster whose projection could not be recognised at load time.
	ErrUnsupportedProjection = errors.New("grid: unsupported projection")

	// ErrEmptyGrid indicates a raster with zero rows or zero columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")

	// ErrNonRectangular indicates input rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrIOError wraps a failure reading or parsing a raster or scenario file.
	ErrIOError = errors.New("grid: io error")

	// ErrBadHeader indicates a malformed ASCII grid header.
	ErrBadHeader = errors.New("grid: malformed ascii grid header")
)
