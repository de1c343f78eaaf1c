package costcache_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nanastas-mit/pextant/costcache"
	"github.com/nanastas-mit/pextant/energetics"
	"github.com/nanastas-mit/pextant/grid"
)

func TestInvalidateRegion_UpdatesOnlyAffectedEdges(t *testing.T) {
	g := flatGrid(t, 5)
	view := g.Snapshot()
	cc := costcache.New()
	cc.Build(view, 80, energetics.DefaultModel())

	far := grid.Cell{Row: 0, Col: 0}
	farDistance, _, _, err := cc.EdgeCost(far, 4)
	require.NoError(t, err)

	g.SetObstacleList([]grid.Cell{{Row: 2, Col: 2}}, true)
	cc.InvalidateRegion(g.Snapshot(), 80, energetics.DefaultModel(), []grid.Cell{{Row: 2, Col: 2}})

	source := grid.Cell{Row: 1, Col: 1}
	for k, off := range grid.Kernel {
		if source.Add(off.DRow, off.DCol) == (grid.Cell{Row: 2, Col: 2}) {
			distance, _, _, err := cc.EdgeCost(source, k)
			require.NoError(t, err)
			require.Equal(t, costcache.Inf, distance)
		}
	}

	farDistanceAfter, _, _, err := cc.EdgeCost(far, 4)
	require.NoError(t, err)
	require.Equal(t, farDistance, farDistanceAfter)
}

func TestInvalidateRegion_NoopBeforeBuild(t *testing.T) {
	cc := costcache.New()
	require.NotPanics(t, func() {
		cc.InvalidateRegion(grid.View{}, 80, energetics.DefaultModel(), nil)
	})
}
