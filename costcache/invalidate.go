package costcache

import (
	"math"

	"github.com/nanastas-mit/pextant/energetics"
	"github.com/nanastas-mit/pextant/grid"
)

// Invalidate discards both the edge-cost and heuristic tables, forcing the
// next Build/BuildHeuristic to recompute from scratch. Use after a Grid
// mutation that is too broad to target with InvalidateRegion (e.g. a
// resolution or mass change).
func (c *CostCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.edgesBuilt = false
	c.distance, c.time, c.energy = nil, nil, nil
	c.heuristic = nil
	c.goal = nil
}

// InvalidateRegion recomputes edge_cost entries whose source or
// destination cell lies in cells, using the given Grid view. The
// heuristic table is unaffected: an obstacle mutation invalidates only
// edge_cost for the changed region, never h.
func (c *CostCache) InvalidateRegion(view grid.View, mass float64, model energetics.Model, cells []grid.Cell) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.edgesBuilt {
		return
	}
	affected := make(map[grid.Cell]bool, len(cells)*(grid.KernelSize+1))
	for _, cell := range cells {
		affected[cell] = true
		for _, off := range grid.Kernel {
			affected[cell.Add(-off.DRow, -off.DCol)] = true
		}
	}
	for cell := range affected {
		if cell.Row < 0 || cell.Row >= c.height || cell.Col < 0 || cell.Col >= c.width {
			continue
		}
		recomputeCellEdges(view, mass, model, c.distance, c.time, c.energy, cell.Row, cell.Col)
	}
}

// recomputeCellEdges recomputes the outgoing edge costs of a single cell,
// the same per-cell computation buildEdgeRows performs for a row range.
func recomputeCellEdges(view grid.View, mass float64, model energetics.Model,
	distance, timeCost, energyCost [][][grid.KernelSize]float64, r, col int) {
	for k, off := range grid.Kernel {
		if !view.Reach[r][col][k] {
			distance[r][col][k] = Inf
			timeCost[r][col][k] = Inf
			energyCost[r][col][k] = Inf
			continue
		}
		nr, nc := r+off.DRow, col+off.DCol
		planar := math.Hypot(float64(off.DRow), float64(off.DCol)) * view.Resolution
		dz := view.Elevation[nr][nc] - view.Elevation[r][col]
		theta := math.Atan2(dz, planar)

		energyJ, speed := model.Energy(planar, theta, view.Gravity, mass)
		distance[r][col][k] = planar / math.Cos(theta)
		timeCost[r][col][k] = planar / speed
		energyCost[r][col][k] = energyJ
	}
}
