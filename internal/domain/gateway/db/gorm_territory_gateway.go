package db

import (
	"context"
	"errors"

	"turbo-api/internal/domain/entity"

	"gorm.io/gorm"
)

type GormTerritoryGateway struct {
	DB *gorm.DB
}

var _ TerritoryGateway = (*GormTerritoryGateway)(nil)

func NewGormTerritoryGateway(db *gorm.DB) *GormTerritoryGateway {
	return &GormTerritoryGateway{DB: db}
}

func (gateway *GormTerritoryGateway) FindAll(ctx context.Context) ([]entity.Territory, error) {
	territories := make([]entity.Territory, 0)
	if err := gateway.DB.WithContext(ctx).Order("name").Find(&territories).Error; err != nil {
		return nil, err
	}
	return territories, nil
}

func (gateway *GormTerritoryGateway) FindByName(ctx context.Context, name string) (*entity.Territory, error) {
	return gateway.findOne(ctx, "name = ?", name)
}

func (gateway *GormTerritoryGateway) FindByCode(ctx context.Context, code string) (*entity.Territory, error) {
	return gateway.findOne(ctx, "code = ?", code)
}

func (gateway *GormTerritoryGateway) findOne(ctx context.Context, query string, arg any) (*entity.Territory, error) {
	var territory entity.Territory
	err := gateway.DB.WithContext(ctx).Where(query, arg).First(&territory).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &territory, nil
}
