package health

import (
	"context"
	"time"

	"turbo-api/internal/domain/gateway/cache"
	"turbo-api/internal/domain/gateway/db"
	"turbo-api/internal/domain/model"
	"turbo-api/pkg/log"
	"turbo-api/pkg/msg"
)

const cachePingTimeout = 2 * time.Second

type healthUseCase struct {
	serviceName string
	dbGateway   db.HealthDBGateway
	windCache   cache.WindCache
}

func NewHealthUseCase(serviceName string, dbGateway db.HealthDBGateway, windCache cache.WindCache) UseCase {
	return &healthUseCase{
		serviceName: serviceName,
		dbGateway:   dbGateway,
		windCache:   windCache,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	dbHealth := useCase.dbGateway.Health(ctx)
	if dbHealth.Status != model.StatusUp {
		log.Warn(msg.GetMessage("health.db_failed", dbHealth.Details["message"]))
	}
	cacheHealth := useCase.cacheHealth(ctx)

	overallStatus := model.StatusUp
	if dbHealth.Status != model.StatusUp || cacheHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Service:  useCase.serviceName,
		Database: dbHealth,
		Cache:    cacheHealth,
	}
}

func (useCase *healthUseCase) cacheHealth(ctx context.Context) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, cachePingTimeout)
	defer cancel()

	if err := useCase.windCache.Ping(ctx); err != nil {
		log.Warn(msg.GetMessage("health.cache_failed", err))
		return model.DownStatus(err)
	}
	return model.UpStatus(map[string]string{"provider": useCase.windCache.Name()})
}
