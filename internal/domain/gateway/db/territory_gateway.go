package db

import (
	"context"

	"turbo-api/internal/domain/entity"
)

// TerritoryGateway reads territories, the finders return nil when nothing matches
type TerritoryGateway interface {
	FindAll(ctx context.Context) ([]entity.Territory, error)
	FindByName(ctx context.Context, name string) (*entity.Territory, error)
	FindByCode(ctx context.Context, code string) (*entity.Territory, error)
}
