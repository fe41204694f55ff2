package territory

import (
	"context"

	"turbo-api/internal/domain/model"
)

type UseCase interface {
	// ListTerritories returns every territory ordered by name
	ListTerritories(ctx context.Context) ([]model.TerritoryResponse, error)

	// GetTerritory returns the territory with its average wind speed and the grade of that average
	GetTerritory(ctx context.Context, name string) (*model.TerritoryResponse, error)

	// SampleTerritories looks up current wind data at every territory center
	SampleTerritories(ctx context.Context, requestID string) (model.SamplingResult, error)
}
