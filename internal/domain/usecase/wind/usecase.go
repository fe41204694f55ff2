package wind

import (
	"context"

	"turbo-api/internal/domain/entity"
	"turbo-api/internal/domain/gateway/db"
	"turbo-api/internal/domain/model"
)

type UseCase interface {
	// GetCurrentWindData returns the combined wind and profitability result for a coordinate,
	// served from cache while it is fresh
	GetCurrentWindData(ctx context.Context, lat, lon float64) (*model.WindDataResponse, error)

	// GetAverageWindSpeedForTerritory returns nil when the territory has no observations
	GetAverageWindSpeedForTerritory(ctx context.Context, territoryCode string) (*float64, error)

	// GetLatestScore returns the last persisted assessment for the exact coordinate, nil when none
	GetLatestScore(ctx context.Context, lat, lon float64) (*entity.ProfitabilityAssessment, error)

	FindScoresByGrade(ctx context.Context, grade string, limit int) ([]entity.ProfitabilityAssessment, error)

	FindObservationsInBounds(ctx context.Context, bounds db.Bounds, limit int) ([]entity.WindObservation, error)
}

// TerritoryResolver maps a coordinate to a territory code, "" when none matches
type TerritoryResolver interface {
	Resolve(ctx context.Context, lat, lon float64) (string, error)
}
