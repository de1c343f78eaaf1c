package scenario

// Coordinate system tags a Scenario's start/end pairs; obstacles_list
// entries are always [row,col]. These mirror coordinate_system's three
// allowed JSON values.
const (
	LatLon = "latlon"
	UTM    = "utm"
	RowCol = "row_col"
)

// Scenario is the on-disk JSON shape describing a single traverse request.
type Scenario struct {
	Model            string     `json:"model"`
	MaxSlope         float64    `json:"max_slope"`
	Start            [2]float64 `json:"start"`
	End              [2]float64 `json:"end"`
	CoordinateSystem string     `json:"coordinate_system"`
	StartHeading     float64    `json:"start_heading"`
	Obstacles        [][]int    `json:"obstacles,omitempty"`
	ObstaclesList    [][2]int   `json:"obstacles_list,omitempty"`
}

// Validate checks the fields Load cannot verify structurally: a known
// coordinate_system, a non-empty model path, and at most one obstacle
// override form.
func (s Scenario) Validate() error {
	if s.Model == "" {
		return ErrMissingModel
	}
	switch s.CoordinateSystem {
	case LatLon, UTM, RowCol:
	default:
		return ErrUnknownCoordinateSystem
	}
	if len(s.Obstacles) > 0 && len(s.ObstaclesList) > 0 {
		return ErrAmbiguousObstacles
	}
	return nil
}

// PathOutput is the on-disk JSON shape of a solved route.
type PathOutput struct {
	Path      [][2]int `json:"path"`
	DistanceM float64  `json:"distance_m"`
	EnergyJ   float64  `json:"energy_j"`
	DurationS float64  `json:"duration_s"`
	Alpha     float64  `json:"alpha"`
}
