package profitability

import "fmt"

// Config holds the turbine model and scoring weights. Values are copied into the Engine at construction.
type Config struct {
	RatedPowerKW float64
	HoursPerYear float64

	CutInSpeed  float64
	RatedSpeed  float64
	CutOutSpeed float64

	// RampScale and RampCap shape the cut-in to rated segment: min(fraction*100*RampScale, RampCap)
	RampScale float64
	RampCap   float64
	// RatedBase and RatedSlope shape the rated to cut-out segment: RatedBase + (speed-rated)*RatedSlope
	RatedBase  float64
	RatedSlope float64

	WindSpeedNorm      float64
	CapacityFactorNorm float64
	WindSpeedWeight    float64
	CapacityWeight     float64
}

// DefaultConfig models a typical 2 MW turbine.
func DefaultConfig() Config {
	return Config{
		RatedPowerKW:       2000,
		HoursPerYear:       8760,
		CutInSpeed:         3.0,
		RatedSpeed:         12.0,
		CutOutSpeed:        25.0,
		RampScale:          0.4,
		RampCap:            40.0,
		RatedBase:          35.0,
		RatedSlope:         2.0,
		WindSpeedNorm:      15.0,
		CapacityFactorNorm: 50.0,
		WindSpeedWeight:    0.6,
		CapacityWeight:     0.4,
	}
}

func (c Config) Validate() error {
	if c.RatedPowerKW <= 0 || c.HoursPerYear <= 0 {
		return fmt.Errorf("rated power and hours per year must be positive")
	}
	if !(c.CutInSpeed >= 0 && c.CutInSpeed < c.RatedSpeed && c.RatedSpeed < c.CutOutSpeed) {
		return fmt.Errorf("turbine speeds must satisfy 0 <= cut-in < rated < cut-out, got %.2f/%.2f/%.2f",
			c.CutInSpeed, c.RatedSpeed, c.CutOutSpeed)
	}
	if c.WindSpeedNorm <= 0 || c.CapacityFactorNorm <= 0 {
		return fmt.Errorf("normalisation factors must be positive")
	}
	if c.WindSpeedWeight < 0 || c.CapacityWeight < 0 {
		return fmt.Errorf("weights must be non-negative")
	}
	return nil
}
