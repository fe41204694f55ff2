package profitability

import (
	"fmt"

	"turbo-api/internal/domain/entity"
)

// Recommendation returns the investment advice for a grade bucket.
func Recommendation(grade entity.Grade, speed, capacityFactor float64) string {
	switch grade {
	case entity.GradeAPlus, entity.GradeA:
		return "HIGHLY RECOMMENDED: This location shows exceptional wind energy potential. " +
			fmt.Sprintf("With an average wind speed of %.2f m/s and capacity factor of %.1f%%, ", speed, capacityFactor) +
			"this site is ideal for commercial wind farm development. " +
			"Expected ROI: 12-15 years with strong long-term profitability."
	case entity.GradeBPlus, entity.GradeB:
		return "RECOMMENDED: This location demonstrates good wind energy potential. " +
			fmt.Sprintf("Average wind speed of %.2f m/s provides viable energy generation. ", speed) +
			"Suitable for medium-scale wind farm projects. " +
			"Expected ROI: 15-18 years with moderate profitability."
	case entity.GradeC:
		return "CONDITIONAL: This location shows marginal wind energy potential. " +
			"Detailed feasibility study recommended before investment. " +
			"Consider hybrid renewable energy solutions. " +
			"Expected ROI: 18-22 years with lower profitability margins."
	default:
		return "NOT RECOMMENDED: This location has insufficient wind energy potential. " +
			fmt.Sprintf("Average wind speed of %.2f m/s is below commercial viability threshold. ", speed) +
			"Explore alternative renewable energy sources such as solar power."
	}
}
