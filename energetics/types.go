package energetics

// Model groups the coefficients of the walking-energetics formula. The
// metabolic-rate expression is a Pandolf-style external-work model: a basal
// term plus a grade-dependent term, scaled by the agent's weight under the
// grid's own gravity rather than Earth's.
//
// Model has no mutable state; the zero value is not meaningful, construct
// one with DefaultModel or NewModel.
type Model struct {
	BaseSpeedMPS       float64 // walking speed on level ground
	MinSpeedMPS        float64 // floor applied on the steepest passable slopes
	SlopeSpeedCoeff    float64 // fractional speed loss per unit of |grade| (|tan(slope)|)
	TerrainCoefficient float64 // Pandolf terrain factor; 1.0 = firm regolith
	BasalRateFactor    float64 // basal metabolic rate as a multiple of weight (W/N)
}

// Option configures a Model constructed by NewModel.
type Option func(*Model)

// WithBaseSpeed sets the level-ground walking speed in metres per second.
// Panics with ErrBadSpeed if mps is not positive.
func WithBaseSpeed(mps float64) Option {
	if mps <= 0 {
		panic(ErrBadSpeed.Error())
	}
	return func(m *Model) { m.BaseSpeedMPS = mps }
}

// WithMinSpeed sets the floor applied to walking speed on steep slopes.
// Panics with ErrBadSpeed if mps is not positive.
func WithMinSpeed(mps float64) Option {
	if mps <= 0 {
		panic(ErrBadSpeed.Error())
	}
	return func(m *Model) { m.MinSpeedMPS = mps }
}

// WithSlopeSpeedCoeff sets the fractional speed loss per unit of |grade|
// (|tan(slope)|).
// Panics with ErrBadCoefficient if coeff is negative.
func WithSlopeSpeedCoeff(coeff float64) Option {
	if coeff < 0 {
		panic(ErrBadCoefficient.Error())
	}
	return func(m *Model) { m.SlopeSpeedCoeff = coeff }
}

// WithTerrainCoefficient sets the Pandolf terrain factor (1.0 = firm
// regolith, higher for loose or broken ground). Panics with
// ErrBadCoefficient if coeff is negative.
func WithTerrainCoefficient(coeff float64) Option {
	if coeff < 0 {
		panic(ErrBadCoefficient.Error())
	}
	return func(m *Model) { m.TerrainCoefficient = coeff }
}

// DefaultModel returns a Model with the reference walking-astronaut
// coefficients: 1.4 m/s on level ground, a 0.3 m/s floor on the steepest
// slopes, a 60% speed loss per unit of |grade|, and firm-regolith terrain.
func DefaultModel() Model {
	return Model{
		BaseSpeedMPS:       1.4,
		MinSpeedMPS:        0.3,
		SlopeSpeedCoeff:    0.6,
		TerrainCoefficient: 1.0,
		BasalRateFactor:    1.5,
	}
}

// NewModel returns DefaultModel with opts applied in order.
func NewModel(opts ...Option) Model {
	m := DefaultModel()
	for _, opt := range opts {
		opt(&m)
	}
	return m
}
