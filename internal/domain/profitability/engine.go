package profitability

import (
	"math"

	"turbo-api/internal/domain/entity"

	"github.com/jonboulle/clockwork"
)

// Engine turns an average wind speed into a ProfitabilityAssessment. It does no I/O and is safe
// for concurrent use.
type Engine struct {
	config Config
	clock  clockwork.Clock
}

func NewEngine(config Config, clock clockwork.Clock) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Engine{config: config, clock: clock}, nil
}

func (e *Engine) Config() Config {
	return e.config
}

// Score assesses averageWindSpeed at the given location. NaN and negative speeds are treated as calm.
func (e *Engine) Score(averageWindSpeed, latitude, longitude float64, locationName, territoryCode string) entity.ProfitabilityAssessment {
	speed := averageWindSpeed
	if math.IsNaN(speed) || speed < 0 {
		speed = 0
	}

	capacityFactor := e.CapacityFactor(speed)
	score := e.score(speed, capacityFactor)
	grade := AssignGrade(score)

	return entity.ProfitabilityAssessment{
		Latitude:             latitude,
		Longitude:            longitude,
		LocationName:         locationName,
		TerritoryCode:        territoryCode,
		AverageWindSpeed:     speed,
		CapacityFactor:       capacityFactor,
		Score:                score,
		Grade:                grade,
		EstimatedEnergyYield: e.EnergyYield(capacityFactor),
		FinancialViability:   FinancialViability(score, capacityFactor),
		Recommendation:       Recommendation(grade, speed, capacityFactor),
		CalculatedAt:         e.clock.Now(),
	}
}

// CapacityFactor returns the percentage of rated output expected at speed.
// The rated segment is not clamped.
func (e *Engine) CapacityFactor(speed float64) float64 {
	c := e.config
	switch {
	case speed < c.CutInSpeed:
		return 0
	case speed < c.RatedSpeed:
		fraction := (speed - c.CutInSpeed) / (c.RatedSpeed - c.CutInSpeed)
		return math.Min(fraction*100*c.RampScale, c.RampCap)
	case speed < c.CutOutSpeed:
		return c.RatedBase + (speed-c.RatedSpeed)*c.RatedSlope
	default:
		return 0
	}
}

// EnergyYield returns the expected kWh per year for a capacity factor percentage.
func (e *Engine) EnergyYield(capacityFactor float64) float64 {
	return e.config.RatedPowerKW * e.config.HoursPerYear * (capacityFactor / 100)
}

func (e *Engine) score(speed, capacityFactor float64) float64 {
	c := e.config
	windSpeedScore := math.Min(speed/c.WindSpeedNorm*100, 100)
	capacityFactorScore := math.Min(capacityFactor/c.CapacityFactorNorm*100, 100)
	return windSpeedScore*c.WindSpeedWeight + capacityFactorScore*c.CapacityWeight
}

var gradeThresholds = []struct {
	min   float64
	grade entity.Grade
}{
	{90, entity.GradeAPlus},
	{80, entity.GradeA},
	{70, entity.GradeBPlus},
	{60, entity.GradeB},
	{50, entity.GradeC},
	{40, entity.GradeD},
}

// AssignGrade maps a 0-100 score to its letter grade.
func AssignGrade(score float64) entity.Grade {
	for _, t := range gradeThresholds {
		if score >= t.min {
			return t.grade
		}
	}
	return entity.GradeF
}

// FinancialViability requires both the score and the capacity factor to clear each band.
func FinancialViability(score, capacityFactor float64) entity.Viability {
	switch {
	case score >= 75 && capacityFactor >= 30:
		return entity.ViabilityExcellent
	case score >= 60 && capacityFactor >= 25:
		return entity.ViabilityGood
	case score >= 45 && capacityFactor >= 20:
		return entity.ViabilityFair
	default:
		return entity.ViabilityPoor
	}
}
