package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nanastas-mit/pextant/grid"
)

// NewPathOutput builds a PathOutput from a solved sequence of cells and its
// cumulative cost.
func NewPathOutput(cells []grid.Cell, distanceM, energyJ, durationS, alpha float64) PathOutput {
	path := make([][2]int, len(cells))
	for i, c := range cells {
		path[i] = [2]int{c.Row, c.Col}
	}
	return PathOutput{
		Path:      path,
		DistanceM: distanceM,
		EnergyJ:   energyJ,
		DurationS: durationS,
		Alpha:     alpha,
	}
}

// Cells converts the output's raw [row,col] pairs back into grid.Cell
// values.
func (p PathOutput) Cells() []grid.Cell {
	cells := make([]grid.Cell, len(p.Path))
	for i, rc := range p.Path {
		cells[i] = grid.Cell{Row: rc[0], Col: rc[1]}
	}
	return cells
}

// Write encodes p as JSON to w.
func (p PathOutput) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("scenario: encode path output: %w", err)
	}
	return nil
}

// Save writes p as JSON to path.
func (p PathOutput) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("scenario: create %s: %w", path, err)
	}
	defer f.Close()
	return p.Write(f)
}

// LoadPathOutput decodes a PathOutput from r, the inverse of Write.
func LoadPathOutput(r io.Reader) (PathOutput, error) {
	var p PathOutput
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return PathOutput{}, fmt.Errorf("scenario: decode path output: %w", err)
	}
	return p, nil
}
