package solver

import (
	"container/heap"
	"context"

	"github.com/nanastas-mit/pextant/costcache"
	"github.com/nanastas-mit/pextant/grid"
)

// CacheEdges (re)builds the Solver's edge-cost tables from a fresh
// snapshot of its Grid and transitions idle/cached/ready -> cached,
// discarding any cached heuristic (idle -> caching_edges -> cached).
// Returns ErrNotRunnable if called while a solve is in progress.
func (s *Solver) CacheEdges() error {
	s.mu.Lock()
	if s.state == StateRunning {
		s.mu.Unlock()
		return ErrNotRunnable
	}
	s.state = StateCachingEdges
	g := s.g
	model := s.model
	mass := s.opts.Mass
	buildOpts := s.opts.BuildOpts
	s.mu.Unlock()

	view := g.Snapshot()
	s.cache.Build(view, mass, model, buildOpts...)

	s.mu.Lock()
	s.state = StateCached
	s.goal = nil
	s.mu.Unlock()
	return nil
}

// SetGoal (re)builds the heuristic table for goal and transitions
// cached/ready -> caching_heuristic -> ready. Returns ErrCacheInvalid if
// edges have not been cached yet, ErrNotRunnable if a solve is in
// progress.
func (s *Solver) SetGoal(goal grid.Cell) error {
	s.mu.Lock()
	switch s.state {
	case StateRunning:
		s.mu.Unlock()
		return ErrNotRunnable
	case StateIdle:
		s.mu.Unlock()
		return ErrCacheInvalid
	}
	s.state = StateCachingHeuristic
	mass := s.opts.Mass
	model := s.model
	weights := s.opts.Weights
	alpha := s.opts.Alpha
	s.mu.Unlock()

	err := s.cache.BuildHeuristic(goal, mass, model, weights, alpha)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateCached
		return err
	}
	s.state = StateReady
	s.goal = &goal
	return nil
}

// NotifyGridMutated returns the Solver to idle, discarding the assumption
// that its CostCache matches the current Grid. The caller is responsible
// for never mutating the Grid while a solve is in progress; this method
// returns ErrNotRunnable if called anyway.
func (s *Solver) NotifyGridMutated() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateRunning {
		return ErrNotRunnable
	}
	s.state = StateIdle
	s.goal = nil
	return nil
}

// Solve runs weighted A* from source to target. If the Solver is not yet
// cached, Solve calls CacheEdges; if not ready for target specifically,
// Solve calls SetGoal(target). ctx governs cancellation in addition to any
// WithTimeout configured on the Solver.
func (s *Solver) Solve(ctx context.Context, source, target grid.Cell) (Path, error) {
	s.mu.Lock()
	state := s.state
	timeout := s.opts.Timeout
	alpha := s.opts.Alpha
	weights := s.opts.Weights
	s.mu.Unlock()

	if state == StateIdle {
		if err := s.CacheEdges(); err != nil {
			return Path{}, err
		}
	}
	s.mu.Lock()
	needsGoal := s.goal == nil || *s.goal != target
	s.mu.Unlock()
	if needsGoal {
		if err := s.SetGoal(target); err != nil {
			return Path{}, err
		}
	}

	if !s.g.Passable(source) || !s.g.Passable(target) {
		return Path{}, ErrEndpointBlocked
	}
	if source == target {
		return Path{Cells: []grid.Cell{source}, Alpha: alpha}, nil
	}

	s.mu.Lock()
	s.state = StateRunning
	s.mu.Unlock()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	path, err := s.run(ctx, source, target, weights)

	s.mu.Lock()
	s.state = StateReady
	s.mu.Unlock()

	return path, err
}

const (
	statusUnseen byte = iota
	statusOpen
	statusClosed
)

// run is the weighted A* main loop: priority key f = g + h (h already
// inflated by alpha), ties broken by lower h then FIFO insertion order;
// duplicate open-set entries are allowed and skipped on pop once stale.
func (s *Solver) run(ctx context.Context, source, target grid.Cell, w costcache.Weights) (Path, error) {
	height, width := s.g.Height, s.g.Width
	gBest := make([][]float64, height)
	status := make([][]byte, height)
	parentCell := make([][]grid.Cell, height)
	parentK := make([][]int, height)
	for r := 0; r < height; r++ {
		gBest[r] = make([]float64, width)
		status[r] = make([]byte, width)
		parentCell[r] = make([]grid.Cell, width)
		parentK[r] = make([]int, width)
		for c := 0; c < width; c++ {
			gBest[r][c] = costcache.Inf
			parentK[r][c] = -1
		}
	}

	open := &openPQ{}
	heap.Init(open)
	seq := 0

	h0, err := s.cache.Heuristic(source)
	if err != nil {
		return Path{}, err
	}
	gBest[source.Row][source.Col] = 0
	status[source.Row][source.Col] = statusOpen
	heap.Push(open, &openItem{cell: source, g: 0, h: h0, seq: seq})
	seq++

	expansions := 0
	for open.Len() > 0 {
		if expansions%256 == 0 {
			select {
			case <-ctx.Done():
				return Path{}, ErrCancelled
			default:
			}
		}
		item := heap.Pop(open).(*openItem)
		u := item.cell
		if status[u.Row][u.Col] == statusClosed {
			continue
		}
		if item.g > gBest[u.Row][u.Col] {
			continue
		}
		status[u.Row][u.Col] = statusClosed
		expansions++

		if u == target {
			return s.reconstruct(source, target, parentCell, parentK), nil
		}

		for k := range grid.Kernel {
			distanceM, timeS, energyJ, err := s.cache.EdgeCost(u, k)
			if err != nil || distanceM >= costcache.Inf {
				continue
			}
			off := grid.Kernel[k]
			v := u.Add(off.DRow, off.DCol)
			if status[v.Row][v.Col] == statusClosed {
				continue
			}
			candidate := gBest[u.Row][u.Col] + w.Dot(distanceM, timeS, energyJ)
			if candidate >= gBest[v.Row][v.Col] {
				continue
			}
			gBest[v.Row][v.Col] = candidate
			parentCell[v.Row][v.Col] = u
			parentK[v.Row][v.Col] = k
			status[v.Row][v.Col] = statusOpen

			hv, err := s.cache.Heuristic(v)
			if err != nil {
				continue
			}
			heap.Push(open, &openItem{cell: v, g: candidate, h: hv, seq: seq})
			seq++
		}
	}
	return Path{}, ErrNoPath
}

func (s *Solver) reconstruct(source, target grid.Cell, parentCell [][]grid.Cell, parentK [][]int) Path {
	cells := []grid.Cell{target}
	cur := target
	var distanceM, energyJ, durationS float64
	for cur != source {
		k := parentK[cur.Row][cur.Col]
		prev := parentCell[cur.Row][cur.Col]
		d, t, e, _ := s.cache.EdgeCost(prev, k)
		distanceM += d
		durationS += t
		energyJ += e
		cells = append(cells, prev)
		cur = prev
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return Path{
		Cells:     cells,
		DistanceM: distanceM,
		EnergyJ:   energyJ,
		DurationS: durationS,
		Alpha:     s.opts.Alpha,
	}
}
