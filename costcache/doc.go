// Package costcache builds and holds the dense per-edge cost tables and
// admissible heuristic table the solver reads. A CostCache is built once
// against a snapshot of a Grid and a fixed weighting vector; it must be
// rebuilt whenever the Grid, the agent, or the weighting changes.
//
// The edge-cost build is row-parallel; the heuristic build is fully
// parallel over cells. Both complete before Build/BuildHeuristic return, so
// a CostCache is always safe to read concurrently once construction
// returns.
package costcache
