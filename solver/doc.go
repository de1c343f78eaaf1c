// Package solver implements weighted A* over a Grid's 8-connected cell
// graph, using a costcache.CostCache as the sole source of edge costs and
// heuristic values.
//
// A Solver moves through an explicit state machine as its Grid and goal are
// (re)cached: idle -> caching_edges -> cached -> caching_heuristic -> ready
// -> running -> {ready, idle}. Solve and SolveSequence bring the Solver to
// ready themselves, calling CacheEdges when it is idle and SetGoal when the
// cached goal differs from the target; any Grid mutation must be reported
// via NotifyGridMutated, which returns the Solver to idle so the next
// solve rebuilds the edge costs.
package solver
