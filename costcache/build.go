package costcache

import (
	"runtime"
	"sync"

	"github.com/nanastas-mit/pextant/energetics"
	"github.com/nanastas-mit/pextant/grid"
)

// New returns an empty CostCache. Call Build before reading any table.
func New() *CostCache {
	return &CostCache{}
}

// Build computes the dense edge-cost tables (distance_m, time_s, energy_j)
// over view using model for the agent's energetics. Build invalidates any
// previously cached heuristic, since the heuristic's scalar bounds are
// themselves derived from model and the grid's own gravity.
//
// The build is row-parallel: rows are partitioned across opts.Workers
// goroutines (GOMAXPROCS if 0).
func (c *CostCache) Build(view grid.View, mass float64, model energetics.Model, opts ...BuildOption) {
	options := DefaultBuildOptions()
	for _, opt := range opts {
		opt(&options)
	}
	workers := options.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > view.Height {
		workers = view.Height
	}
	if workers < 1 {
		workers = 1
	}

	distance := make([][][grid.KernelSize]float64, view.Height)
	timeCost := make([][][grid.KernelSize]float64, view.Height)
	energyCost := make([][][grid.KernelSize]float64, view.Height)
	for r := range distance {
		distance[r] = make([][grid.KernelSize]float64, view.Width)
		timeCost[r] = make([][grid.KernelSize]float64, view.Width)
		energyCost[r] = make([][grid.KernelSize]float64, view.Width)
	}

	rowsPerWorker := (view.Height + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		r0 := w * rowsPerWorker
		r1 := r0 + rowsPerWorker
		if r1 > view.Height {
			r1 = view.Height
		}
		if r0 >= r1 {
			continue
		}
		wg.Add(1)
		go func(r0, r1 int) {
			defer wg.Done()
			buildEdgeRows(view, mass, model, distance, timeCost, energyCost, r0, r1)
		}(r0, r1)
	}
	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.width, c.height = view.Width, view.Height
	c.resolution, c.gravity = view.Resolution, view.Gravity
	c.distance, c.time, c.energy = distance, timeCost, energyCost
	c.edgesBuilt = true
	c.heuristic = nil
	c.goal = nil
}

func buildEdgeRows(view grid.View, mass float64, model energetics.Model,
	distance, timeCost, energyCost [][][grid.KernelSize]float64, r0, r1 int) {
	for r := r0; r < r1; r++ {
		for col := 0; col < view.Width; col++ {
			recomputeCellEdges(view, mass, model, distance, timeCost, energyCost, r, col)
		}
	}
}

// EdgeCost returns the (distance_m, time_s, energy_j) triple for moving
// from cell in kernel direction k. Returns Inf in all three layers if the
// move is not reachable. Returns ErrOutOfBounds if cell is outside the
// cached grid, or if no edge costs have been built yet.
func (c *CostCache) EdgeCost(cell grid.Cell, k int) (distanceM, timeS, energyJ float64, err error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.edgesBuilt || !c.inBounds(cell) || k < 0 || k >= grid.KernelSize {
		return 0, 0, 0, ErrOutOfBounds
	}
	return c.distance[cell.Row][cell.Col][k], c.time[cell.Row][cell.Col][k], c.energy[cell.Row][cell.Col][k], nil
}

func (c *CostCache) inBounds(cell grid.Cell) bool {
	return cell.Row >= 0 && cell.Row < c.height && cell.Col >= 0 && cell.Col < c.width
}
