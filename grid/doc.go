// Package grid owns the raster-backed digital elevation model used to plan
// surface traverses: cell elevations, derived slope, passability, and the
// 8-connected reach table that costcache and solver build on.
//
// A Grid is built once from a RasterSource (or one of the concrete loaders
// in this package) and then mutated only through its obstacle-editing
// methods; every mutation recomputes the derived obstacle/passable/reach
// tables for the affected region so a Grid is always internally
// consistent between calls.
//
// Coordinate frames (lat/long, UTM, grid row/col, grid x/y) are modelled as
// the closed Frame variant in frame.go; conversions between them are total
// functions over that variant rather than a string-keyed dispatch.
package grid
