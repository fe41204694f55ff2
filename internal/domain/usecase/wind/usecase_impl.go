package wind

import (
	"context"
	"errors"
	"fmt"
	"time"

	"turbo-api/internal/domain/entity"
	"turbo-api/internal/domain/gateway/api"
	"turbo-api/internal/domain/gateway/cache"
	"turbo-api/internal/domain/gateway/db"
	"turbo-api/internal/domain/gateway/queue"
	"turbo-api/internal/domain/model"
	"turbo-api/internal/domain/model/external"
	"turbo-api/internal/domain/profitability"
	"turbo-api/internal/infra/metrics"
	"turbo-api/pkg/log"
	"turbo-api/pkg/msg"
	"turbo-api/pkg/util/numberutils"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

const (
	DefaultFreshnessWindow = 10 * time.Minute
	DefaultQueryLimit      = 20
	MaxQueryLimit          = 100
)

type Config struct {
	// FreshnessWindow is how long a cached result is served, an entry exactly this old is stale
	FreshnessWindow time.Duration
	// StrictPersistence fails the lookup when a store write fails instead of logging it
	StrictPersistence bool
}

// Dependencies wires the orchestrator. Resolver and Publisher are optional.
type Dependencies struct {
	Weather   api.WeatherGateway
	Store     db.WindDataGateway
	Cache     cache.WindCache
	Engine    *profitability.Engine
	Resolver  TerritoryResolver
	Publisher queue.AssessmentPublisher
	Metrics   *metrics.Metrics
	Clock     clockwork.Clock
}

type windUseCase struct {
	config    Config
	weather   api.WeatherGateway
	store     db.WindDataGateway
	cache     cache.WindCache
	engine    *profitability.Engine
	resolver  TerritoryResolver
	publisher queue.AssessmentPublisher
	metrics   *metrics.Metrics
	clock     clockwork.Clock
}

func NewWindUseCase(config Config, deps Dependencies) UseCase {
	if config.FreshnessWindow <= 0 {
		config.FreshnessWindow = DefaultFreshnessWindow
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if deps.Publisher == nil {
		deps.Publisher = queue.NewNoopPublisher()
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.NewMetricsForTesting()
	}

	return &windUseCase{
		config:    config,
		weather:   deps.Weather,
		store:     deps.Store,
		cache:     deps.Cache,
		engine:    deps.Engine,
		resolver:  deps.Resolver,
		publisher: deps.Publisher,
		metrics:   deps.Metrics,
		clock:     deps.Clock,
	}
}

func (uc *windUseCase) GetCurrentWindData(ctx context.Context, lat, lon float64) (*model.WindDataResponse, error) {
	if err := validateCoordinates(lat, lon); err != nil {
		return nil, err
	}

	start := uc.clock.Now()
	key := cache.Key(lat, lon)

	if cached := uc.lookup(ctx, key); cached != nil {
		uc.metrics.RequestDuration.WithLabelValues("cache").Observe(uc.clock.Since(start).Seconds())
		return cached, nil
	}

	weather, err := uc.fetch(ctx, lat, lon, key)
	if err != nil {
		return nil, err
	}

	territoryCode := uc.resolveTerritory(ctx, lat, lon, key)

	observation := entity.WindObservation{
		Latitude:      lat,
		Longitude:     lon,
		LocationName:  weather.Name,
		WindSpeed:     weather.WindSpeed,
		WindDirection: weather.WindDirection,
		Temperature:   weather.Temperature,
		Pressure:      weather.Pressure,
		Humidity:      weather.Humidity,
		TerritoryCode: territoryCode,
		Timestamp:     uc.clock.Now(),
	}
	if saved, err := uc.store.CreateWindData(ctx, observation); err != nil {
		if err := uc.persistenceFailed("wind_data", "wind.persist.observation_failed", key, err); err != nil {
			return nil, err
		}
	} else if saved != nil {
		observation.ID = saved.ID
	}

	assessment := uc.engine.Score(weather.WindSpeed, lat, lon, weather.Name, territoryCode)
	if _, err := uc.store.CreateProfitabilityScore(ctx, assessment); err != nil {
		if err := uc.persistenceFailed("profitability_score", "wind.persist.score_failed", key, err); err != nil {
			return nil, err
		}
	}
	uc.metrics.Assessments.WithLabelValues(string(assessment.Grade)).Inc()
	log.Info(msg.GetMessage("wind.assessment.done", key, assessment.Grade, numberutils.Round(assessment.Score, 2)),
		zap.String("location", weather.Name),
		zap.Float64("wind_speed", weather.WindSpeed),
		zap.String("territory", territoryCode))

	response := model.NewWindDataResponse(observation, assessment)

	entry := model.CacheEntry{Data: *response, CreatedAt: uc.clock.Now()}
	if err := uc.cache.Put(ctx, key, entry); err != nil {
		log.Warn(msg.GetMessage("wind.cache.store_failed", key, err), zap.String("cache", uc.cache.Name()))
	}

	uc.publish(ctx, key, *response)
	uc.metrics.RequestDuration.WithLabelValues("provider").Observe(uc.clock.Since(start).Seconds())

	return response, nil
}

// lookup returns a copy of the cached response while it is fresh. Cache errors count as a miss.
func (uc *windUseCase) lookup(ctx context.Context, key string) *model.WindDataResponse {
	entry, found, err := uc.cache.Get(ctx, key)
	if err != nil {
		uc.metrics.CacheLookups.WithLabelValues("error").Inc()
		log.Warn(msg.GetMessage("wind.cache.lookup_failed", key, err), zap.String("cache", uc.cache.Name()))
		return nil
	}
	if !found || !entry.IsFresh(uc.clock.Now(), uc.config.FreshnessWindow) {
		uc.metrics.CacheLookups.WithLabelValues("miss").Inc()
		log.Debug(msg.GetMessage("wind.cache.miss", key))
		return nil
	}

	uc.metrics.CacheLookups.WithLabelValues("hit").Inc()
	log.Debug(msg.GetMessage("wind.cache.hit", key))
	data := entry.Data
	return &data
}

func (uc *windUseCase) fetch(ctx context.Context, lat, lon float64, key string) (*external.CurrentWeather, error) {
	log.Debug(msg.GetMessage("wind.fetch.start", key))

	start := uc.clock.Now()
	weather, err := uc.weather.GetCurrentWeather(ctx, lat, lon)
	uc.metrics.ProviderDuration.Observe(uc.clock.Since(start).Seconds())

	if err == nil && weather == nil {
		err = fmt.Errorf("%w: empty response", model.ErrProviderDataMalformed)
	}
	if err != nil {
		if errors.Is(err, model.ErrProviderDataMalformed) {
			uc.metrics.ProviderRequests.WithLabelValues("malformed").Inc()
			log.Warn(msg.GetMessage("wind.fetch.malformed", key, err))
			return nil, err
		}
		if !errors.Is(err, model.ErrProviderUnavailable) {
			err = fmt.Errorf("%w: %w", model.ErrProviderUnavailable, err)
		}
		uc.metrics.ProviderRequests.WithLabelValues("unavailable").Inc()
		log.Warn(msg.GetMessage("wind.fetch.failed", key, err))
		return nil, err
	}

	uc.metrics.ProviderRequests.WithLabelValues("success").Inc()
	return weather, nil
}

func (uc *windUseCase) resolveTerritory(ctx context.Context, lat, lon float64, key string) string {
	if uc.resolver == nil {
		return ""
	}
	code, err := uc.resolver.Resolve(ctx, lat, lon)
	if err != nil {
		log.Warn(msg.GetMessage("wind.territory.resolve_failed", key, err))
		return ""
	}
	return code
}

// persistenceFailed records a failed write and returns an error only under strict persistence
func (uc *windUseCase) persistenceFailed(entityName, messageKey, key string, err error) error {
	uc.metrics.PersistenceFailures.WithLabelValues(entityName).Inc()
	log.Warn(msg.GetMessage(messageKey, key, err), zap.Bool("strict", uc.config.StrictPersistence))
	if uc.config.StrictPersistence {
		return fmt.Errorf("%w: %s: %w", model.ErrPersistenceFailure, entityName, err)
	}
	return nil
}

func (uc *windUseCase) publish(ctx context.Context, key string, data model.WindDataResponse) {
	event := model.AssessmentEvent{
		EventID:       uuid.NewString(),
		OccurredAt:    uc.clock.Now().UTC().Format(time.RFC3339Nano),
		CacheKey:      key,
		TerritoryCode: data.TerritoryCode,
		Data:          data,
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.metrics.PublishFailures.Inc()
		log.Warn(msg.GetMessage("wind.publish.failed", key, err), zap.String("publisher", uc.publisher.Name()))
		return
	}
	log.Debug(msg.GetMessage("event.published", event.EventID, uc.publisher.Name()))
}

func (uc *windUseCase) GetAverageWindSpeedForTerritory(ctx context.Context, territoryCode string) (*float64, error) {
	avg, err := uc.store.FindAverageWindSpeedByTerritory(ctx, territoryCode)
	if err != nil {
		return nil, fmt.Errorf("average wind speed for territory %s: %w", territoryCode, err)
	}
	return avg, nil
}

func (uc *windUseCase) GetLatestScore(ctx context.Context, lat, lon float64) (*entity.ProfitabilityAssessment, error) {
	if err := validateCoordinates(lat, lon); err != nil {
		return nil, err
	}
	score, err := uc.store.FindLatestScoreByCoordinates(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("latest score for %s: %w", cache.Key(lat, lon), err)
	}
	return score, nil
}

func (uc *windUseCase) FindScoresByGrade(ctx context.Context, grade string, limit int) ([]entity.ProfitabilityAssessment, error) {
	g, ok := entity.ParseGrade(grade)
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidGrade, grade)
	}
	scores, err := uc.store.FindScoresByGrade(ctx, g, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("scores by grade %s: %w", g, err)
	}
	return scores, nil
}

func (uc *windUseCase) FindObservationsInBounds(ctx context.Context, bounds db.Bounds, limit int) ([]entity.WindObservation, error) {
	if err := validateCoordinates(bounds.MinLat, bounds.MinLon); err != nil {
		return nil, err
	}
	if err := validateCoordinates(bounds.MaxLat, bounds.MaxLon); err != nil {
		return nil, err
	}
	if bounds.MinLat > bounds.MaxLat || bounds.MinLon > bounds.MaxLon {
		return nil, fmt.Errorf("%w: bounds minimum exceeds maximum", model.ErrInvalidCoordinates)
	}
	observations, err := uc.store.FindWindDataInBounds(ctx, bounds, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("observations in bounds: %w", err)
	}
	return observations, nil
}

func validateCoordinates(lat, lon float64) error {
	if !numberutils.InRange(lat, -90, 90) || !numberutils.InRange(lon, -180, 180) {
		return fmt.Errorf("%w: %s", model.ErrInvalidCoordinates, msg.GetMessage("wind.invalid_coordinates", lat, lon))
	}
	return nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultQueryLimit
	}
	return numberutils.ClampInt(limit, 1, MaxQueryLimit)
}
