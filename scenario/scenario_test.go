package scenario_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nanastas-mit/pextant/grid"
	"github.com/nanastas-mit/pextant/scenario"
)

const sampleScenario = `{
	"model": "terrain.asc",
	"max_slope": 25,
	"start": [0, 0],
	"end": [4, 4],
	"coordinate_system": "row_col",
	"start_heading": 90,
	"obstacles_list": [[2, 2]]
}`

func TestLoad_ParsesAllFields(t *testing.T) {
	s, err := scenario.Load(strings.NewReader(sampleScenario))
	require.NoError(t, err)
	require.Equal(t, "terrain.asc", s.Model)
	require.Equal(t, 25.0, s.MaxSlope)
	require.Equal(t, [2]float64{0, 0}, s.Start)
	require.Equal(t, [2]float64{4, 4}, s.End)
	require.Equal(t, scenario.RowCol, s.CoordinateSystem)
	require.Equal(t, 90.0, s.StartHeading)
	require.Equal(t, [][2]int{{2, 2}}, s.ObstaclesList)
}

func TestLoad_RejectsUnknownCoordinateSystem(t *testing.T) {
	_, err := scenario.Load(strings.NewReader(`{"model":"a","coordinate_system":"mercator","start":[0,0],"end":[1,1]}`))
	require.ErrorIs(t, err, scenario.ErrUnknownCoordinateSystem)
}

func TestLoad_RejectsAmbiguousObstacles(t *testing.T) {
	body := `{"model":"a","coordinate_system":"row_col","start":[0,0],"end":[1,1],
		"obstacles":[[0,1]],"obstacles_list":[[0,0]]}`
	_, err := scenario.Load(strings.NewReader(body))
	require.ErrorIs(t, err, scenario.ErrAmbiguousObstacles)
}

func TestLoad_RejectsMissingModel(t *testing.T) {
	_, err := scenario.Load(strings.NewReader(`{"coordinate_system":"row_col","start":[0,0],"end":[1,1]}`))
	require.ErrorIs(t, err, scenario.ErrMissingModel)
}

func TestResolveEndpoints_RowCol(t *testing.T) {
	s, err := scenario.Load(strings.NewReader(sampleScenario))
	require.NoError(t, err)

	g, err := grid.NewFlat(5, 5, 1, 9.81, 30)
	require.NoError(t, err)

	start, end, err := s.ResolveEndpoints(g)
	require.NoError(t, err)
	require.Equal(t, grid.Cell{Row: 0, Col: 0}, start)
	require.Equal(t, grid.Cell{Row: 4, Col: 4}, end)
}

func TestApplyObstacles_List(t *testing.T) {
	s, err := scenario.Load(strings.NewReader(sampleScenario))
	require.NoError(t, err)
	g, err := grid.NewFlat(5, 5, 1, 9.81, 30)
	require.NoError(t, err)

	require.NoError(t, s.ApplyObstacles(g))
	require.False(t, g.Passable(grid.Cell{Row: 2, Col: 2}))
	require.True(t, g.Passable(grid.Cell{Row: 0, Col: 0}))
}

func TestApplyObstacles_DenseMask(t *testing.T) {
	body := `{"model":"a","coordinate_system":"row_col","start":[0,0],"end":[1,1],
		"obstacles":[[0,0,0],[0,1,0],[0,0,0]]}`
	s, err := scenario.Load(strings.NewReader(body))
	require.NoError(t, err)
	g, err := grid.NewFlat(3, 3, 1, 9.81, 30)
	require.NoError(t, err)

	require.NoError(t, s.ApplyObstacles(g))
	require.False(t, g.Passable(grid.Cell{Row: 1, Col: 1}))
	require.True(t, g.Passable(grid.Cell{Row: 0, Col: 0}))
}

func TestPathOutput_RoundTrip(t *testing.T) {
	cells := []grid.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}
	out := scenario.NewPathOutput(cells, 2.82, 150.5, 3.1, 1.0)

	var buf bytes.Buffer
	require.NoError(t, out.Write(&buf))

	decoded, err := scenario.LoadPathOutput(&buf)
	require.NoError(t, err)
	require.Equal(t, out, decoded)
	require.Equal(t, cells, decoded.Cells())
}
