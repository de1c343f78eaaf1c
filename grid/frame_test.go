package grid

import (
	"errors"
	"testing"
)

func TestParseUTMZone(t *testing.T) {
	cases := []struct {
		in       string
		wantZone int
		wantOK   bool
	}{
		{"NAD83 / UTM zone 5N", 5, true},
		{"WGS 84 / UTM Zone_12S", 12, true},
		{"Mars 2000", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		zone, ok := ParseUTMZone(tc.in)
		if zone != tc.wantZone || ok != tc.wantOK {
			t.Errorf("ParseUTMZone(%q) = (%d,%v); want (%d,%v)", tc.in, zone, ok, tc.wantZone, tc.wantOK)
		}
	}
}

func TestToCell_RowCol(t *testing.T) {
	g, err := New([][]float64{{0, 0}, {0, 0}}, 1, 1.62, 30, flatOrigin())
	if err != nil {
		t.Fatal(err)
	}
	cell, err := g.ToCell(Point{Frame: Frame{Kind: RowCol}, A: 1, B: 0})
	if err != nil {
		t.Fatal(err)
	}
	if cell != (Cell{Row: 1, Col: 0}) {
		t.Errorf("cell = %+v; want {1 0}", cell)
	}
	if _, err := g.ToCell(Point{Frame: Frame{Kind: RowCol}, A: 9, B: 9}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestToCell_XYRelativeToOrigin(t *testing.T) {
	origin := Origin{Frame: Frame{Kind: XY}, Easting: 100, Northing: 50}
	g, err := New([][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, 5, 1.62, 30, origin)
	if err != nil {
		t.Fatal(err)
	}
	cell, err := g.ToCell(Point{Frame: Frame{Kind: XY}, A: 110, B: 40})
	if err != nil {
		t.Fatal(err)
	}
	if cell != (Cell{Row: 2, Col: 2}) {
		t.Errorf("cell = %+v; want {2 2}", cell)
	}
}

func TestToCell_LatLonUnsupported(t *testing.T) {
	g, err := New([][]float64{{0, 0}, {0, 0}}, 1, 1.62, 30,
		Origin{Frame: Frame{Kind: UTMZone, Zone: 5}})
	if err != nil {
		t.Fatal(err)
	}
	_, err = g.ToCell(Point{Frame: Frame{Kind: LatLon}, A: 0, B: 0})
	if !errors.Is(err, ErrUnsupportedProjection) {
		t.Errorf("expected ErrUnsupportedProjection, got %v", err)
	}
}

func TestToCell_UTMZoneMismatch(t *testing.T) {
	g, err := New([][]float64{{0, 0}, {0, 0}}, 1, 1.62, 30,
		Origin{Frame: Frame{Kind: UTMZone, Zone: 5}})
	if err != nil {
		t.Fatal(err)
	}
	_, err = g.ToCell(Point{Frame: Frame{Kind: UTMZone, Zone: 6}, A: 0, B: 0})
	if !errors.Is(err, ErrUnsupportedProjection) {
		t.Errorf("expected ErrUnsupportedProjection on zone mismatch, got %v", err)
	}
}
