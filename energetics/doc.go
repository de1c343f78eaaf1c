// Package energetics provides pure functions mapping a walking agent's
// (distance, slope, gravity, mass) to the energy it spends and the speed it
// achieves, plus admissible scalar bounds that costcache's heuristic uses.
//
// A Model groups the tunable coefficients of the walking-energetics
// formula; there is no mutable state, so a Model can be shared freely
// across goroutines and across the Grids/Agents it is applied to.
package energetics
