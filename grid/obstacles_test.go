package grid

import "testing"

func flatTestGrid(t *testing.T, size int) *Grid {
	t.Helper()
	elevation := make([][]float64, size)
	for r := range elevation {
		elevation[r] = make([]float64, size)
	}
	g, err := New(elevation, 1, 1.62, 30, flatOrigin())
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestSetObstacleDisc(t *testing.T) {
	g := flatTestGrid(t, 7)
	center := Cell{Row: 3, Col: 3}
	g.SetObstacleDisc(center, 1, true)

	if g.Passable(center) {
		t.Error("disc center should be obstacle")
	}
	if g.Passable(Cell{Row: 3, Col: 4}) {
		t.Error("adjacent cell within radius should be obstacle")
	}
	if !g.Passable(Cell{Row: 0, Col: 0}) {
		t.Error("cell far from disc should remain passable")
	}
}

func TestSetObstacleDisc_UpdatesNeighborReach(t *testing.T) {
	g := flatTestGrid(t, 5)
	blocked := Cell{Row: 2, Col: 2}
	g.SetObstacleDisc(blocked, 0, true)

	neighbor := Cell{Row: 1, Col: 1}
	for k, off := range Kernel {
		if blocked == neighbor.Add(off.DRow, off.DCol) {
			if g.Reach(neighbor, k) {
				t.Errorf("neighbor should no longer reach blocked cell via kernel %d", k)
			}
		}
	}
}

func TestSetObstacleList(t *testing.T) {
	g := flatTestGrid(t, 5)
	cells := []Cell{{Row: 0, Col: 0}, {Row: 4, Col: 4}}
	g.SetObstacleList(cells, true)

	if g.Passable(Cell{Row: 0, Col: 0}) || g.Passable(Cell{Row: 4, Col: 4}) {
		t.Error("listed cells should be obstacles")
	}
	if !g.Passable(Cell{Row: 2, Col: 2}) {
		t.Error("unrelated cell should remain passable")
	}
}

func TestSetObstacleList_Idempotent(t *testing.T) {
	g := flatTestGrid(t, 5)
	cells := []Cell{{Row: 1, Col: 1}, {Row: 3, Col: 3}}
	g.SetObstacleList(cells, true)
	before := snapshotObstacles(g)

	g.SetObstacleList(cells, true)
	after := snapshotObstacles(g)

	if len(before) != len(after) {
		t.Fatalf("obstacle snapshot size changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		for j := range before[i] {
			if before[i][j] != after[i][j] {
				t.Errorf("cell (%d,%d) obstacle state changed on repeated SetObstacleList(true)", i, j)
			}
		}
	}
}

func snapshotObstacles(g *Grid) [][]bool {
	out := make([][]bool, g.Height)
	for r := range out {
		out[r] = make([]bool, g.Width)
		for c := range out[r] {
			out[r][c] = !g.Passable(Cell{Row: r, Col: c})
		}
	}
	return out
}

func TestClearObstacles(t *testing.T) {
	g := flatTestGrid(t, 5)
	g.SetObstacleList([]Cell{{Row: 2, Col: 2}}, true)
	if g.Passable(Cell{Row: 2, Col: 2}) {
		t.Fatal("setup: cell should be obstacle before clear")
	}
	g.ClearObstacles()
	if !g.Passable(Cell{Row: 2, Col: 2}) {
		t.Error("cell should be passable after ClearObstacles")
	}
}
