package scenario

import (
	"fmt"

	"github.com/nanastas-mit/pextant/grid"
)

func (s Scenario) frameKind() grid.FrameKind {
	switch s.CoordinateSystem {
	case LatLon:
		return grid.LatLon
	case UTM:
		return grid.UTMZone
	default:
		return grid.RowCol
	}
}

func (s Scenario) point(pair [2]float64) grid.Point {
	return grid.Point{Frame: grid.Frame{Kind: s.frameKind()}, A: pair[0], B: pair[1]}
}

// ResolveEndpoints converts Start and End into Grid cells, in the frame
// named by CoordinateSystem.
func (s Scenario) ResolveEndpoints(g *grid.Grid) (start, end grid.Cell, err error) {
	start, err = g.ToCell(s.point(s.Start))
	if err != nil {
		return grid.Cell{}, grid.Cell{}, fmt.Errorf("scenario: start: %w", err)
	}
	end, err = g.ToCell(s.point(s.End))
	if err != nil {
		return grid.Cell{}, grid.Cell{}, fmt.Errorf("scenario: end: %w", err)
	}
	return start, end, nil
}

// ApplyObstacles overlays the scenario's obstacle override, if any, onto g.
// Obstacles is a dense 2-D 0/1 mask (1 = obstacle, 0 = free; the reverse of
// the PNG obstacle raster's convention, per create_obstacle_map's
// obstacle_value=1 in the original source); ObstaclesList is a sparse list
// of [row,col] pairs, always marked as obstacle. Validate already rejects
// scenarios specifying both.
func (s Scenario) ApplyObstacles(g *grid.Grid) error {
	if len(s.Obstacles) > 0 {
		mask := make([][]bool, len(s.Obstacles))
		for r, row := range s.Obstacles {
			mask[r] = make([]bool, len(row))
			for c, v := range row {
				mask[r][c] = v != 0
			}
		}
		return g.ApplyObstacleMask(mask)
	}
	if len(s.ObstaclesList) > 0 {
		cells := make([]grid.Cell, len(s.ObstaclesList))
		for i, rc := range s.ObstaclesList {
			cells[i] = grid.Cell{Row: rc[0], Col: rc[1]}
		}
		g.SetObstacleList(cells, true)
	}
	return nil
}
