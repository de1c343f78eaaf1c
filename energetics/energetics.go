package energetics

import "math"

// Speed returns the walking speed in m/s achievable on a slope of
// slopeRad radians (signed: positive uphill, negative downhill). Speed
// falls off with the magnitude of slope and never drops below MinSpeedMPS,
// so Speed is always in [MinSpeedMPS, BaseSpeedMPS].
func (m Model) Speed(slopeRad float64) float64 {
	grade := math.Tan(slopeRad)
	v := m.BaseSpeedMPS * (1 - m.SlopeSpeedCoeff*math.Abs(grade))
	if v < m.MinSpeedMPS {
		return m.MinSpeedMPS
	}
	return v
}

// basalRate is the metabolic rate (watts) an agent of the given weight (N)
// spends standing still; it is the floor on Energy's metabolic rate.
func (m Model) basalRate(weightN float64) float64 {
	return m.BasalRateFactor * weightN
}

// Energy returns the metabolic energy (joules) spent walking a horizontal
// distance dr (metres) on a slope of slopeRad radians, under gravity g
// (m/s^2), for an agent of the given mass (kg), together with the walking
// speed used to compute it.
//
// The metabolic-rate term follows the Pandolf external-work equation: a
// basal rate plus a grade- and speed-dependent term, scaled by the
// terrain coefficient. The rate never drops below the basal floor, which
// keeps MinEnergyPerMetre a valid admissible bound regardless of slope.
func (m Model) Energy(dr, slopeRad, g, mass float64) (joules, speedMps float64) {
	v := m.Speed(slopeRad)
	weight := mass * g
	gradePercent := math.Tan(slopeRad) * 100

	rate := m.basalRate(weight) + m.TerrainCoefficient*weight*(1.5*v*v+0.35*v*gradePercent)
	if floor := m.basalRate(weight); rate < floor {
		rate = floor
	}

	duration := dr / v
	return rate * duration, v
}

// MaxSpeed is the admissible upper bound on Speed over all slopes: the
// level-ground speed, since Speed never exceeds it.
func (m Model) MaxSpeed() float64 {
	return m.BaseSpeedMPS
}

// MinEnergyPerMetre is the admissible lower bound on Energy(1, slopeRad, g,
// mass) over all slopes the agent can traverse: the basal metabolic rate
// divided by the maximum achievable speed. Energy's rate is always at
// least the basal rate and its speed is always at most BaseSpeedMPS, so
// this bound never exceeds the true cost of any one-metre step.
func (m Model) MinEnergyPerMetre(mass, g float64) float64 {
	weight := mass * g
	return m.basalRate(weight) / m.MaxSpeed()
}
