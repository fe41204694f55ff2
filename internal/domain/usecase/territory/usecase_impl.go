package territory

import (
	"context"
	"fmt"

	"turbo-api/internal/domain/gateway/db"
	"turbo-api/internal/domain/model"
	"turbo-api/internal/domain/profitability"
	"turbo-api/internal/domain/usecase/wind"
	"turbo-api/internal/infra/metrics"
	"turbo-api/pkg/log"
	"turbo-api/pkg/msg"

	"go.uber.org/zap"
)

// Reloader refreshes cached territory boundaries
type Reloader interface {
	Reload(ctx context.Context) error
}

type territoryUseCase struct {
	gateway  db.TerritoryGateway
	wind     wind.UseCase
	engine   *profitability.Engine
	reloader Reloader
	metrics  *metrics.Metrics
}

func NewTerritoryUseCase(gateway db.TerritoryGateway, windUseCase wind.UseCase, engine *profitability.Engine, reloader Reloader, m *metrics.Metrics) UseCase {
	if m == nil {
		m = metrics.NewMetricsForTesting()
	}
	return &territoryUseCase{
		gateway:  gateway,
		wind:     windUseCase,
		engine:   engine,
		reloader: reloader,
		metrics:  m,
	}
}

func (uc *territoryUseCase) ListTerritories(ctx context.Context) ([]model.TerritoryResponse, error) {
	territories, err := uc.gateway.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list territories: %w", err)
	}

	responses := make([]model.TerritoryResponse, 0, len(territories))
	for _, t := range territories {
		responses = append(responses, model.NewTerritoryResponse(t))
	}
	return responses, nil
}

func (uc *territoryUseCase) GetTerritory(ctx context.Context, name string) (*model.TerritoryResponse, error) {
	territory, err := uc.gateway.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find territory %s: %w", name, err)
	}
	if territory == nil {
		return nil, fmt.Errorf("%w: %s", model.ErrTerritoryNotFound, name)
	}

	response := model.NewTerritoryResponse(*territory)

	avg, err := uc.wind.GetAverageWindSpeedForTerritory(ctx, territory.Code)
	if err != nil {
		log.Warn(msg.GetMessage("territory.average_failed", territory.Code, err))
		return &response, nil
	}
	if avg != nil {
		lat, lon, _ := territory.Center()
		assessment := uc.engine.Score(*avg, lat, lon, territory.Name, territory.Code)
		response.AverageWindSpeed = avg
		response.ProfitabilityGrade = string(assessment.Grade)
	}
	return &response, nil
}

func (uc *territoryUseCase) SampleTerritories(ctx context.Context, requestID string) (model.SamplingResult, error) {
	result := model.SamplingResult{RequestID: requestID}

	if uc.reloader != nil {
		if err := uc.reloader.Reload(ctx); err != nil {
			log.Warn(msg.GetMessage("territory.sampling.failed", requestID, "boundaries", err))
		}
	}

	territories, err := uc.gateway.FindAll(ctx)
	if err != nil {
		return result, fmt.Errorf("sampling %s: %w", requestID, err)
	}
	log.Info(msg.GetMessage("territory.sampling.start", requestID, len(territories)), zap.String("request_id", requestID))

	for _, t := range territories {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		lat, lon, ok := t.Center()
		if !ok {
			result.Skipped++
			uc.metrics.TerritorySamples.WithLabelValues("skipped").Inc()
			log.Debug(msg.GetMessage("territory.sampling.skipped", requestID, t.Name))
			continue
		}

		if _, err := uc.wind.GetCurrentWindData(ctx, lat, lon); err != nil {
			result.Failed = append(result.Failed, t.Name)
			uc.metrics.TerritorySamples.WithLabelValues("failed").Inc()
			log.Warn(msg.GetMessage("territory.sampling.failed", requestID, t.Name, err),
				zap.String("request_id", requestID),
				zap.String("territory", t.Code))
			continue
		}
		result.Sampled++
		uc.metrics.TerritorySamples.WithLabelValues("sampled").Inc()
	}

	log.Info(msg.GetMessage("territory.sampling.done", requestID, result.Sampled, len(result.Failed)),
		zap.String("request_id", requestID),
		zap.Int("skipped", result.Skipped))
	return result, nil
}
