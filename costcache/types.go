package costcache

import (
	"math"
	"sync"

	"github.com/nanastas-mit/pextant/grid"
)

// Inf is the sentinel edge cost for a kernel move whose destination is not
// reachable (grid.Reach is false).
const Inf = math.MaxFloat64

// Weights is the scalar optimisation vector w = (w_dist, w_time, w_energy)
// used to dot the three cost layers into a single edge cost and to scale
// the heuristic identically.
type Weights struct {
	Distance float64
	Time     float64
	Energy   float64
}

// Dot returns w_dist*distance + w_time*time + w_energy*energy.
func (w Weights) Dot(distanceM, timeS, energyJ float64) float64 {
	return w.Distance*distanceM + w.Time*timeS + w.Energy*energyJ
}

func (w Weights) valid() bool {
	if w.Distance < 0 || w.Time < 0 || w.Energy < 0 {
		return false
	}
	return w.Distance > 0 || w.Time > 0 || w.Energy > 0
}

// BuildOptions configures Build.
type BuildOptions struct {
	Workers int // goroutines for the row-parallel edge-cost build; 0 = GOMAXPROCS
}

// BuildOption is a functional option for Build.
type BuildOption func(*BuildOptions)

// WithWorkers sets the number of goroutines used for the row-parallel
// edge-cost build. Panics if workers < 0.
func WithWorkers(workers int) BuildOption {
	if workers < 0 {
		panic("costcache: Workers must be non-negative")
	}
	return func(o *BuildOptions) { o.Workers = workers }
}

// DefaultBuildOptions returns BuildOptions with Workers=0 (GOMAXPROCS).
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{Workers: 0}
}

// CostCache holds the dense edge-cost and heuristic tables for a fixed
// Grid snapshot, agent energetics, and weighting vector.
//
// CostCache is single-writer, many-reader: Build and BuildHeuristic take
// the write lock and rebuild their respective tables; all query methods
// take the read lock. Concurrent reads while no build is in flight are
// always safe.
type CostCache struct {
	mu sync.RWMutex

	width, height       int
	resolution, gravity float64

	distance [][][grid.KernelSize]float64
	time     [][][grid.KernelSize]float64
	energy   [][][grid.KernelSize]float64

	heuristic [][]float64
	goal      *grid.Cell
	alpha     float64
	weights   Weights

	edgesBuilt bool
}

// Width and Height report the cached grid's dimensions. Both return 0
// before the first Build.
func (c *CostCache) Width() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.width
}

func (c *CostCache) Height() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.height
}

// Goal returns the cell the current heuristic table is valid for, and
// whether one has been cached.
func (c *CostCache) Goal() (grid.Cell, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.goal == nil {
		return grid.Cell{}, false
	}
	return *c.goal, true
}

// Alpha returns the inflation factor used to build the current heuristic.
func (c *CostCache) Alpha() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.alpha
}

// Weights returns the weighting vector the current heuristic was built
// with. The edge-cost tables themselves are unweighted.
func (c *CostCache) Weights() Weights {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.weights
}
