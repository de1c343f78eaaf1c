package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load decodes a Scenario from r and validates it.
func Load(r io.Reader) (Scenario, error) {
	var s Scenario
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Scenario{}, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// LoadFile opens path and decodes a Scenario from it.
func LoadFile(path string) (Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}
