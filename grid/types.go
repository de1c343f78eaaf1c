package grid

import "sync"

// Cell identifies a single grid sample by integer (row, column).
type Cell struct {
	Row, Col int
}

// Add returns the cell offset by (dr, dc).
func (c Cell) Add(dr, dc int) Cell {
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Offset is a single (Δrow, Δcol) kernel entry.
type Offset struct {
	DRow, DCol int
}

// KernelSize is the fixed number of 8-connected neighbor offsets.
const KernelSize = 8

// Kernel is the canonical 8-neighbor offset order. Changing this order is a
// breaking change to any persisted CostCache, since costcache and the reach
// table both index their third axis by it.
var Kernel = [KernelSize]Offset{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1} /*        */, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// NoData marks an elevation sample outside the physically plausible range.
// Values at or below this sentinel are treated as missing.
const NoData = -1e5

// Origin anchors a Grid's north-west cell centre in a projected coordinate
// frame: Easting/Northing give that cell's planar coordinates (metres) in
// Frame, with Easting increasing east and Northing increasing north.
type Origin struct {
	Frame             Frame
	Easting, Northing float64
}

// Grid is a raster-backed digital elevation model with derived slope,
// obstacle, passability, and reach tables. A zero-value Grid is not usable;
// construct one with New (for example from LoadASCIIGrid's samples),
// NewFlat, or FromRaster.
//
// Grid is single-writer, many-reader: concurrent reads (solves) against an
// unmutated Grid are safe and independent; mutation methods take the write
// lock and recompute only the affected derived region.
type Grid struct {
	Width, Height int
	Resolution    float64 // metres per cell (square cells)
	Gravity       float64 // m/s^2, a property of the planet this Grid models
	MaxSlopeDeg   float64

	NWOrigin Origin // projected coordinates of the NW cell centre

	elevation [][]float64
	valid     [][]bool
	slope     [][]float64
	obstacle  [][]bool
	passable  [][]bool
	reach     [][][KernelSize]bool

	annotated [][]bool // explicit obstacle annotations, independent of slope

	mu sync.RWMutex
}
