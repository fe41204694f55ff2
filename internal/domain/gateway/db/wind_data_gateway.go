package db

import (
	"context"

	"turbo-api/internal/domain/entity"
)

type WindDataGateway interface {
	CreateWindData(ctx context.Context, obs entity.WindObservation) (*entity.WindObservation, error)
	CreateProfitabilityScore(ctx context.Context, assessment entity.ProfitabilityAssessment) (*entity.ProfitabilityAssessment, error)

	// FindAverageWindSpeedByTerritory returns nil when the territory has no observations
	FindAverageWindSpeedByTerritory(ctx context.Context, territoryCode string) (*float64, error)
	// FindLatestScoreByCoordinates returns nil when the exact coordinate was never scored
	FindLatestScoreByCoordinates(ctx context.Context, lat, lon float64) (*entity.ProfitabilityAssessment, error)
	FindScoresByGrade(ctx context.Context, grade entity.Grade, limit int) ([]entity.ProfitabilityAssessment, error)
	FindWindDataInBounds(ctx context.Context, bounds Bounds, limit int) ([]entity.WindObservation, error)
}

// Bounds is an inclusive latitude/longitude box
type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}
