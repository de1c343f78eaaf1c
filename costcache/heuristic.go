package costcache

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/nanastas-mit/pextant/energetics"
	"github.com/nanastas-mit/pextant/grid"
)

// BuildHeuristic computes the admissible octile-distance heuristic to
// goal for an agent of the given mass under model, scaled by weights and
// inflated by alpha (alpha=1 preserves admissibility; alpha>1 trades
// bounded sub-optimality for speed).
//
// Requires Build to have run first, since the heuristic is computed at the
// same resolution and gravity Build captured from the grid.
func (c *CostCache) BuildHeuristic(goal grid.Cell, mass float64, model energetics.Model, weights Weights, alpha float64) error {
	if !weights.valid() {
		return ErrBadWeights
	}
	if alpha < 1 {
		return fmt.Errorf("costcache: alpha must be >= 1, got %v", alpha)
	}

	c.mu.RLock()
	if !c.edgesBuilt {
		c.mu.RUnlock()
		return fmt.Errorf("costcache: %w: edge costs not built", ErrNoGoal)
	}
	width, height, resolution, gravity := c.width, c.height, c.resolution, c.gravity
	c.mu.RUnlock()

	if !c.inBoundsDims(goal, width, height) {
		return ErrOutOfBounds
	}

	perUnit := weights.Dot(1, 1/model.MaxSpeed(), model.MinEnergyPerMetre(mass, gravity))

	heuristic := make([][]float64, height)
	for r := range heuristic {
		heuristic[r] = make([]float64, width)
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > height {
		workers = height
	}
	if workers < 1 {
		workers = 1
	}
	rowsPerWorker := (height + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		r0 := w * rowsPerWorker
		r1 := r0 + rowsPerWorker
		if r1 > height {
			r1 = height
		}
		if r0 >= r1 {
			continue
		}
		wg.Add(1)
		go func(r0, r1 int) {
			defer wg.Done()
			for r := r0; r < r1; r++ {
				for col := 0; col < width; col++ {
					dr := abs(r - goal.Row)
					dc := abs(col - goal.Col)
					minRC, maxRC := dr, dc
					if dc < dr {
						minRC, maxRC = dc, dr
					}
					octile := (math.Sqrt2*float64(minRC) + float64(maxRC-minRC)) * resolution
					heuristic[r][col] = alpha * octile * perUnit
				}
			}
		}(r0, r1)
	}
	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.heuristic = heuristic
	c.goal = &goal
	c.alpha = alpha
	c.weights = weights
	return nil
}

// Heuristic returns the cached heuristic value at cell. Returns ErrNoGoal
// if no heuristic has been built yet.
func (c *CostCache) Heuristic(cell grid.Cell) (float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.heuristic == nil {
		return 0, ErrNoGoal
	}
	if !c.inBounds(cell) {
		return 0, ErrOutOfBounds
	}
	return c.heuristic[cell.Row][cell.Col], nil
}

func (c *CostCache) inBoundsDims(cell grid.Cell, width, height int) bool {
	return cell.Row >= 0 && cell.Row < height && cell.Col >= 0 && cell.Col < width
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
