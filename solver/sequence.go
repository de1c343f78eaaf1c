package solver

import (
	"context"

	"github.com/nanastas-mit/pextant/grid"
)

// SolveSequence solves each consecutive pair of points in turn, sharing
// edge costs across legs (CacheEdges runs at most once) but rebuilding the
// heuristic for each new goal. Legs are concatenated into a single Path,
// dropping the duplicate join cell between consecutive legs. Returns
// ErrEmptySequence if points has fewer than two entries.
//
// If a segment fails, SolveSequence returns the successfully solved prefix
// (every completed leg before the failing one) alongside the segment's
// error, rather than discarding the partial result.
func (s *Solver) SolveSequence(ctx context.Context, points []grid.Cell) (Path, error) {
	if len(points) < 2 {
		return Path{}, ErrEmptySequence
	}

	s.mu.Lock()
	state := s.state
	alpha := s.opts.Alpha
	s.mu.Unlock()
	if state == StateIdle {
		if err := s.CacheEdges(); err != nil {
			return Path{}, err
		}
	}

	var out Path
	out.Alpha = alpha
	for i := 0; i < len(points)-1; i++ {
		leg, err := s.Solve(ctx, points[i], points[i+1])
		if err != nil {
			return out, err
		}
		if i == 0 {
			out.Cells = append(out.Cells, leg.Cells...)
		} else {
			out.Cells = append(out.Cells, leg.Cells[1:]...)
		}
		out.DistanceM += leg.DistanceM
		out.EnergyJ += leg.EnergyJ
		out.DurationS += leg.DurationS
	}
	return out, nil
}
