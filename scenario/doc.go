// Package scenario loads and saves the traverse planner's JSON input/output
// contract: a scenario file (raster path, slope threshold, start/end
// coordinates, optional obstacle overrides) and a path output (the solved
// route plus its cumulative cost).
//
// Coordinate pairs are frame-tagged by a coordinate_system string rather
// than a Go type, mirroring the scenario file's own JSON shape;
// ResolveEndpoints turns a Scenario's raw pairs into grid.Cell values against a built Grid.
package scenario
