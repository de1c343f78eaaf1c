package solver

import (
	"sync"
	"time"

	"github.com/nanastas-mit/pextant/costcache"
	"github.com/nanastas-mit/pextant/energetics"
	"github.com/nanastas-mit/pextant/grid"
)

// State is a Solver's position in its build/solve lifecycle.
type State int

const (
	StateIdle State = iota
	StateCachingEdges
	StateCached
	StateCachingHeuristic
	StateReady
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCachingEdges:
		return "caching_edges"
	case StateCached:
		return "cached"
	case StateCachingHeuristic:
		return "caching_heuristic"
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Options configures a Solver's search behaviour.
type Options struct {
	Alpha     float64           // inflation factor, >= 1
	Weights   costcache.Weights // scalar optimisation vector
	Mass      float64           // agent mass, kg
	Timeout   time.Duration     // 0 = no timeout
	BuildOpts []costcache.BuildOption
}

// Option is a functional option for NewSolver.
type Option func(*Options)

// WithAlpha sets the weighted-A* inflation factor. Panics if alpha < 1.
func WithAlpha(alpha float64) Option {
	if alpha < 1 {
		panic("solver: alpha must be >= 1")
	}
	return func(o *Options) { o.Alpha = alpha }
}

// WithWeights sets the scalar optimisation vector (w_dist, w_time,
// w_energy). Panics if all components are zero or any is negative.
func WithWeights(w costcache.Weights) Option {
	if w.Distance < 0 || w.Time < 0 || w.Energy < 0 {
		panic("solver: weights must be non-negative")
	}
	if w.Distance == 0 && w.Time == 0 && w.Energy == 0 {
		panic("solver: at least one weight must be positive")
	}
	return func(o *Options) { o.Weights = w }
}

// WithMass sets the agent mass in kilograms. Panics if mass is not
// positive.
func WithMass(mass float64) Option {
	if mass <= 0 {
		panic("solver: mass must be positive")
	}
	return func(o *Options) { o.Mass = mass }
}

// WithTimeout bounds how long a single Solve call may run before it is
// cancelled with ErrCancelled. A zero timeout (the default) disables the
// bound.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

// WithBuildOptions forwards costcache.BuildOption values to the Solver's
// internal CostCache.Build call (e.g. WithWorkers).
func WithBuildOptions(opts ...costcache.BuildOption) Option {
	return func(o *Options) { o.BuildOpts = opts }
}

// DefaultOptions returns Options with alpha=1 (admissible, optimal),
// w=(0,0,1) (minimise energy), and mass=80kg.
func DefaultOptions() Options {
	return Options{
		Alpha:   1,
		Weights: costcache.Weights{Energy: 1},
		Mass:    80,
	}
}

// Path is an ordered sequence of cells from source to goal, together with
// the cumulative cost along it.
type Path struct {
	Cells     []grid.Cell
	DistanceM float64
	EnergyJ   float64
	DurationS float64
	Alpha     float64
}

// Solver runs weighted A* against a Grid and CostCache pair. A Solver owns
// its CostCache exclusively: construct one CostCache per Solver, or rebuild
// the Solver's cache before sharing a CostCache across Solvers.
type Solver struct {
	mu sync.Mutex

	g     *grid.Grid
	cache *costcache.CostCache
	model energetics.Model
	opts  Options

	state State
	goal  *grid.Cell
}

// NewSolver returns an idle Solver over g, using its own CostCache built
// against model. Call CacheEdges then SetGoal (or use Solve/SolveSequence,
// which do both implicitly) before solving.
func NewSolver(g *grid.Grid, model energetics.Model, opts ...Option) *Solver {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Solver{
		g:     g,
		cache: costcache.New(),
		model: model,
		opts:  options,
		state: StateIdle,
	}
}

// State returns the Solver's current lifecycle state.
func (s *Solver) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
