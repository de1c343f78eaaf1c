package grid

// View is an immutable snapshot of the fields costcache needs to build its
// dense tables. Snapshotting once up front lets the row-parallel build in
// costcache run lock-free against a consistent Grid state, and ensures the
// build completes before any solve reads the cache.
type View struct {
	Width, Height int
	Resolution    float64
	Gravity       float64
	Elevation     [][]float64
	Passable      [][]bool
	Reach         [][][KernelSize]bool
}

// Snapshot captures the current derived state of g. The returned View does
// not observe later mutations to g.
func (g *Grid) Snapshot() View {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return View{
		Width:      g.Width,
		Height:     g.Height,
		Resolution: g.Resolution,
		Gravity:    g.Gravity,
		Elevation:  cloneRows(g.elevation),
		Passable:   cloneBoolRows(g.passable),
		Reach:      cloneReach(g.reach),
	}
}

func cloneBoolRows(rows [][]bool) [][]bool {
	out := make([][]bool, len(rows))
	for i, row := range rows {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

func cloneReach(rows [][][KernelSize]bool) [][][KernelSize]bool {
	out := make([][][KernelSize]bool, len(rows))
	for i, row := range rows {
		out[i] = append([][KernelSize]bool(nil), row...)
	}
	return out
}
