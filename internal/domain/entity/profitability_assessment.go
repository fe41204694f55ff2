package entity

import "time"

type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// Grades lists every grade from best to worst.
var Grades = []Grade{GradeAPlus, GradeA, GradeBPlus, GradeB, GradeC, GradeD, GradeF}

// ParseGrade returns the grade named by s.
func ParseGrade(s string) (Grade, bool) {
	for _, g := range Grades {
		if string(g) == s {
			return g, true
		}
	}
	return "", false
}

type Viability string

const (
	ViabilityExcellent Viability = "Excellent"
	ViabilityGood      Viability = "Good"
	ViabilityFair      Viability = "Fair"
	ViabilityPoor      Viability = "Poor"
)

// ProfitabilityAssessment is the scoring result for one average wind speed at a location.
type ProfitabilityAssessment struct {
	ID                   string    `json:"id,omitempty"`
	Latitude             float64   `json:"latitude"`
	Longitude            float64   `json:"longitude"`
	LocationName         string    `json:"locationName"`
	TerritoryCode        string    `json:"territoryCode,omitempty"`
	AverageWindSpeed     float64   `json:"averageWindSpeed"`
	CapacityFactor       float64   `json:"capacityFactor"`
	Score                float64   `json:"score"`
	Grade                Grade     `json:"grade"`
	EstimatedEnergyYield float64   `json:"estimatedEnergyYield"`
	FinancialViability   Viability `json:"financialViability"`
	Recommendation       string    `json:"recommendation"`
	CalculatedAt         time.Time `json:"calculatedAt"`
}
