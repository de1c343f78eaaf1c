// Command traverse plans a walking route across a digital elevation model.
// It reads a scenario file (raster path, slope threshold, start/end
// coordinates, optional obstacle overrides), solves for the lowest-cost
// route with weighted A*, and writes the resulting path and its cumulative
// distance, energy, and duration as JSON.
//
// Usage:
//
//	traverse [flags] scenario.json
//
// Exit status is 0 on success, 2 if no path connects the endpoints, 3 if
// either endpoint is blocked, and 1 for any other failure.
package main
