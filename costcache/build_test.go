package costcache_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nanastas-mit/pextant/costcache"
	"github.com/nanastas-mit/pextant/energetics"
	"github.com/nanastas-mit/pextant/grid"
)

const marsGravity = 3.71

func flatGrid(t *testing.T, size int) *grid.Grid {
	t.Helper()
	elevation := make([][]float64, size)
	for r := range elevation {
		elevation[r] = make([]float64, size)
	}
	g, err := grid.New(elevation, 1, marsGravity, 30, grid.Origin{Frame: grid.Frame{Kind: grid.XY}})
	require.NoError(t, err)
	return g
}

func TestBuild_ReachableEdgesAreFinite(t *testing.T) {
	g := flatGrid(t, 5)
	cc := costcache.New()
	cc.Build(g.Snapshot(), 80, energetics.DefaultModel())

	center := grid.Cell{Row: 2, Col: 2}
	for k := range grid.Kernel {
		distance, timeS, energyJ, err := cc.EdgeCost(center, k)
		require.NoError(t, err)
		require.Less(t, distance, costcache.Inf)
		require.Less(t, timeS, costcache.Inf)
		require.Less(t, energyJ, costcache.Inf)
		require.Greater(t, distance, 0.0)
	}
}

func TestBuild_UnreachableEdgeIsInf(t *testing.T) {
	g := flatGrid(t, 5)
	g.SetObstacleList([]grid.Cell{{Row: 1, Col: 1}}, true)
	cc := costcache.New()
	cc.Build(g.Snapshot(), 80, energetics.DefaultModel())

	source := grid.Cell{Row: 2, Col: 2}
	for k, off := range grid.Kernel {
		if source.Add(off.DRow, off.DCol) == (grid.Cell{Row: 1, Col: 1}) {
			distance, timeS, energyJ, err := cc.EdgeCost(source, k)
			require.NoError(t, err)
			require.Equal(t, costcache.Inf, distance)
			require.Equal(t, costcache.Inf, timeS)
			require.Equal(t, costcache.Inf, energyJ)
		}
	}
}

func TestBuild_DiagonalDistanceExceedsOrthogonal(t *testing.T) {
	g := flatGrid(t, 5)
	cc := costcache.New()
	cc.Build(g.Snapshot(), 80, energetics.DefaultModel())

	center := grid.Cell{Row: 2, Col: 2}
	var diagonal, orthogonal float64
	for k, off := range grid.Kernel {
		d, _, _, err := cc.EdgeCost(center, k)
		require.NoError(t, err)
		if off.DRow != 0 && off.DCol != 0 {
			diagonal = d
		} else {
			orthogonal = d
		}
	}
	require.InDelta(t, math.Sqrt2, diagonal/orthogonal, 1e-9)
}

func TestEdgeCost_OutOfBoundsBeforeBuild(t *testing.T) {
	cc := costcache.New()
	_, _, _, err := cc.EdgeCost(grid.Cell{}, 0)
	require.ErrorIs(t, err, costcache.ErrOutOfBounds)
}

func TestInvalidate_ClearsEdgeCosts(t *testing.T) {
	g := flatGrid(t, 3)
	cc := costcache.New()
	cc.Build(g.Snapshot(), 80, energetics.DefaultModel())
	cc.Invalidate()

	_, _, _, err := cc.EdgeCost(grid.Cell{Row: 1, Col: 1}, 0)
	require.ErrorIs(t, err, costcache.ErrOutOfBounds)
}
