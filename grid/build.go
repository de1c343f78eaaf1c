package grid

import "math"

// New constructs a Grid from raw elevation samples in row-major order.
// Samples at or below NoData are treated as invalid (no-data). The slope,
// obstacle, passable, and reach tables are derived immediately; New never
// returns a Grid with stale derived state.
//
// Returns ErrEmptyGrid if elevation has zero rows or zero columns, and
// ErrNonRectangular if rows differ in length.
func New(elevation [][]float64, resolution, gravity, maxSlopeDeg float64, origin Origin) (*Grid, error) {
	if len(elevation) == 0 || len(elevation[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(elevation), len(elevation[0])
	for _, row := range elevation {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid{
		Width:       w,
		Height:      h,
		Resolution:  resolution,
		Gravity:     gravity,
		MaxSlopeDeg: maxSlopeDeg,
		NWOrigin:    origin,
	}
	g.elevation = cloneRows(elevation)
	g.valid = make([][]bool, h)
	for r := range g.valid {
		g.valid[r] = make([]bool, w)
		for c := range g.valid[r] {
			g.valid[r][c] = isValidElevation(g.elevation[r][c])
		}
	}
	g.annotated = make([][]bool, h)
	for r := range g.annotated {
		g.annotated[r] = make([]bool, w)
	}
	g.rebuildAll()
	return g, nil
}

func isValidElevation(z float64) bool {
	return !math.IsNaN(z) && !math.IsInf(z, 0) && z > NoData
}

func cloneRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

func newBoolGrid(h, w int) [][]bool {
	g := make([][]bool, h)
	for r := range g {
		g[r] = make([]bool, w)
	}
	return g
}

// rebuildAll recomputes slope, obstacle, passable, and reach over the whole
// grid. Callers must hold g.mu for writing.
func (g *Grid) rebuildAll() {
	g.computeSlope()
	g.obstacle = newBoolGrid(g.Height, g.Width)
	g.recomputeObstacleRegion(0, 0, g.Height-1, g.Width-1)
	g.passable = newBoolGrid(g.Height, g.Width)
	g.reach = make([][][KernelSize]bool, g.Height)
	for r := range g.reach {
		g.reach[r] = make([][KernelSize]bool, g.Width)
	}
	g.recomputePassableAndReach(0, 0, g.Height-1, g.Width-1, 1)
}

// computeSlope derives slope in degrees from elevation via centred finite
// differences, one-sided at the boundary.
func (g *Grid) computeSlope() {
	h, w := g.Height, g.Width
	g.slope = make([][]float64, h)
	for r := range g.slope {
		g.slope[r] = make([]float64, w)
	}
	res := g.Resolution
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if !g.valid[r][c] {
				continue
			}
			gx := g.gradientX(r, c, res)
			gy := g.gradientY(r, c, res)
			g.slope[r][c] = math.Atan(math.Sqrt(gx*gx+gy*gy)) * 180 / math.Pi
		}
	}
}

func (g *Grid) gradientX(r, c int, res float64) float64 {
	left, right := c-1, c+1
	switch {
	case left < 0:
		return (g.elevAt(r, right, r, c) - g.elevAt(r, c, r, c)) / res
	case right >= g.Width:
		return (g.elevAt(r, c, r, c) - g.elevAt(r, left, r, c)) / res
	default:
		return (g.elevAt(r, right, r, c) - g.elevAt(r, left, r, c)) / (2 * res)
	}
}

func (g *Grid) gradientY(r, c int, res float64) float64 {
	up, down := r-1, r+1
	switch {
	case up < 0:
		return (g.elevAt(down, c, r, c) - g.elevAt(r, c, r, c)) / res
	case down >= g.Height:
		return (g.elevAt(r, c, r, c) - g.elevAt(up, c, r, c)) / res
	default:
		return (g.elevAt(down, c, r, c) - g.elevAt(up, c, r, c)) / (2 * res)
	}
}

// elevAt returns elevation at (r,c), falling back to the centre cell
// (cr,cc)'s own elevation if the neighbor is out of bounds or has no data,
// so a single missing neighbor does not poison the gradient.
func (g *Grid) elevAt(r, c, cr, cc int) float64 {
	if r < 0 || r >= g.Height || c < 0 || c >= g.Width || !g.valid[r][c] {
		return g.elevation[cr][cc]
	}
	return g.elevation[r][c]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// recomputeObstacleRegion recomputes obstacle = slope > maxSlope OR
// annotated, over the inclusive cell rectangle [r0,r1] x [c0,c1].
func (g *Grid) recomputeObstacleRegion(r0, c0, r1, c1 int) {
	r0, c0 = clampInt(r0, 0, g.Height-1), clampInt(c0, 0, g.Width-1)
	r1, c1 = clampInt(r1, 0, g.Height-1), clampInt(c1, 0, g.Width-1)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			g.obstacle[r][c] = g.slope[r][c] > g.MaxSlopeDeg || g.annotated[r][c]
		}
	}
}

// recomputePassableAndReach recomputes passable and reach over the
// rectangle [r0,r1] x [c0,c1] expanded by haloCells in every direction
// (reach of a neighboring cell can change when this cell's passability
// changes).
func (g *Grid) recomputePassableAndReach(r0, c0, r1, c1, haloCells int) {
	r0, c0 = clampInt(r0-haloCells, 0, g.Height-1), clampInt(c0-haloCells, 0, g.Width-1)
	r1, c1 = clampInt(r1+haloCells, 0, g.Height-1), clampInt(c1+haloCells, 0, g.Width-1)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			g.passable[r][c] = g.valid[r][c] && !g.obstacle[r][c]
		}
	}
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			for k, off := range Kernel {
				nr, nc := r+off.DRow, c+off.DCol
				g.reach[r][c][k] = g.cellInBounds(nr, nc) && g.passable[nr][nc]
			}
		}
	}
}

func (g *Grid) cellInBounds(r, c int) bool {
	return r >= 0 && r < g.Height && c >= 0 && c < g.Width
}

// InBounds reports whether cell lies within the grid.
func (g *Grid) InBounds(cell Cell) bool {
	return g.cellInBounds(cell.Row, cell.Col)
}

// Elevation returns the elevation at cell. Returns ErrOutOfBounds if cell
// is outside the grid.
func (g *Grid) Elevation(cell Cell) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.InBounds(cell) {
		return 0, ErrOutOfBounds
	}
	return g.elevation[cell.Row][cell.Col], nil
}

// Slope returns the slope in degrees at cell.
func (g *Grid) Slope(cell Cell) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.InBounds(cell) {
		return 0, ErrOutOfBounds
	}
	return g.slope[cell.Row][cell.Col], nil
}

// Passable reports whether cell is in bounds, has valid elevation, and is
// not an obstacle.
func (g *Grid) Passable(cell Cell) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.cellInBounds(cell.Row, cell.Col) {
		return false
	}
	return g.passable[cell.Row][cell.Col]
}

// Reach reports whether the kernel move k is admissible from cell: the
// destination cell is in bounds, valid, and passable.
func (g *Grid) Reach(cell Cell, k int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.cellInBounds(cell.Row, cell.Col) || k < 0 || k >= KernelSize {
		return false
	}
	return g.reach[cell.Row][cell.Col][k]
}

// Neighbors yields the reachable neighbors of cell together with their
// kernel index.
func (g *Grid) Neighbors(cell Cell) []struct {
	Cell Cell
	K    int
} {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]struct {
		Cell Cell
		K    int
	}, 0, KernelSize)
	if !g.cellInBounds(cell.Row, cell.Col) {
		return out
	}
	for k, off := range Kernel {
		if g.reach[cell.Row][cell.Col][k] {
			out = append(out, struct {
				Cell Cell
				K    int
			}{Cell: cell.Add(off.DRow, off.DCol), K: k})
		}
	}
	return out
}
