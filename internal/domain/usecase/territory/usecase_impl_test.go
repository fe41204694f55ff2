package territory

import (
	"context"
	"errors"
	"testing"

	"turbo-api/internal/domain/entity"
	"turbo-api/internal/domain/gateway/db"
	"turbo-api/internal/domain/model"
	"turbo-api/internal/domain/profitability"
	"turbo-api/internal/infra/metrics"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindUseCase struct {
	averages map[string]float64
	avgErr   error
	failAt   map[float64]error
	lookups  [][2]float64
}

func (f *fakeWindUseCase) GetCurrentWindData(_ context.Context, lat, lon float64) (*model.WindDataResponse, error) {
	f.lookups = append(f.lookups, [2]float64{lat, lon})
	if err, ok := f.failAt[lat]; ok {
		return nil, err
	}
	return &model.WindDataResponse{Latitude: lat, Longitude: lon}, nil
}

func (f *fakeWindUseCase) GetAverageWindSpeedForTerritory(_ context.Context, code string) (*float64, error) {
	if f.avgErr != nil {
		return nil, f.avgErr
	}
	avg, ok := f.averages[code]
	if !ok {
		return nil, nil
	}
	return &avg, nil
}

func (f *fakeWindUseCase) GetLatestScore(context.Context, float64, float64) (*entity.ProfitabilityAssessment, error) {
	return nil, nil
}

func (f *fakeWindUseCase) FindScoresByGrade(context.Context, string, int) ([]entity.ProfitabilityAssessment, error) {
	return nil, nil
}

func (f *fakeWindUseCase) FindObservationsInBounds(context.Context, db.Bounds, int) ([]entity.WindObservation, error) {
	return nil, nil
}

type countingReloader struct {
	calls int
}

func (r *countingReloader) Reload(context.Context) error {
	r.calls++
	return nil
}

func ptr(v float64) *float64 { return &v }

func newTerritoryUseCase(t *testing.T, gateway db.TerritoryGateway, windUseCase *fakeWindUseCase, reloader Reloader, m *metrics.Metrics) UseCase {
	t.Helper()
	engine, err := profitability.NewEngine(profitability.DefaultConfig(), clockwork.NewFakeClock())
	require.NoError(t, err)
	return NewTerritoryUseCase(gateway, windUseCase, engine, reloader, m)
}

func TestListTerritories(t *testing.T) {
	uc := newTerritoryUseCase(t, &fakeTerritoryGateway{territories: sampleTerritories()}, &fakeWindUseCase{}, nil, nil)

	territories, err := uc.ListTerritories(context.Background())

	require.NoError(t, err)
	require.Len(t, territories, 5)
	assert.Equal(t, "KA", territories[0].Code)
	assert.Nil(t, territories[0].AverageWindSpeed)
}

func TestListTerritoriesError(t *testing.T) {
	uc := newTerritoryUseCase(t, &fakeTerritoryGateway{err: errors.New("db down")}, &fakeWindUseCase{}, nil, nil)

	_, err := uc.ListTerritories(context.Background())

	assert.ErrorContains(t, err, "db down")
}

func TestGetTerritoryWithAverage(t *testing.T) {
	windUseCase := &fakeWindUseCase{averages: map[string]float64{"KA": 14.0}}
	uc := newTerritoryUseCase(t, &fakeTerritoryGateway{territories: sampleTerritories()}, windUseCase, nil, nil)

	territory, err := uc.GetTerritory(context.Background(), "Karnataka")

	require.NoError(t, err)
	require.NotNil(t, territory.AverageWindSpeed)
	assert.Equal(t, 14.0, *territory.AverageWindSpeed)
	assert.Equal(t, "A", territory.ProfitabilityGrade)
}

func TestGetTerritoryWithoutObservations(t *testing.T) {
	uc := newTerritoryUseCase(t, &fakeTerritoryGateway{territories: sampleTerritories()}, &fakeWindUseCase{}, nil, nil)

	territory, err := uc.GetTerritory(context.Background(), "Tamil Nadu")

	require.NoError(t, err)
	assert.Nil(t, territory.AverageWindSpeed)
	assert.Empty(t, territory.ProfitabilityGrade)
}

func TestGetTerritoryAverageFailureIsNotFatal(t *testing.T) {
	windUseCase := &fakeWindUseCase{avgErr: errors.New("timeout")}
	uc := newTerritoryUseCase(t, &fakeTerritoryGateway{territories: sampleTerritories()}, windUseCase, nil, nil)

	territory, err := uc.GetTerritory(context.Background(), "Karnataka")

	require.NoError(t, err)
	assert.Equal(t, "KA", territory.Code)
	assert.Nil(t, territory.AverageWindSpeed)
}

func TestGetTerritoryNotFound(t *testing.T) {
	uc := newTerritoryUseCase(t, &fakeTerritoryGateway{territories: sampleTerritories()}, &fakeWindUseCase{}, nil, nil)

	_, err := uc.GetTerritory(context.Background(), "Atlantis")

	assert.ErrorIs(t, err, model.ErrTerritoryNotFound)
}

func TestSampleTerritories(t *testing.T) {
	territories := []entity.Territory{
		{Name: "Karnataka", Code: "KA", CenterLatitude: ptr(15.3), CenterLongitude: ptr(75.7)},
		{Name: "Tamil Nadu", Code: "TN", CenterLatitude: ptr(11.1), CenterLongitude: ptr(78.6)},
		{Name: "Unmapped", Code: "UM"},
	}
	windUseCase := &fakeWindUseCase{failAt: map[float64]error{11.1: model.ErrProviderUnavailable}}
	reloader := &countingReloader{}
	m := metrics.NewMetricsForTesting()
	uc := newTerritoryUseCase(t, &fakeTerritoryGateway{territories: territories}, windUseCase, reloader, m)

	result, err := uc.SampleTerritories(context.Background(), "req-1")

	require.NoError(t, err)
	assert.Equal(t, "req-1", result.RequestID)
	assert.Equal(t, 1, result.Sampled)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, []string{"Tamil Nadu"}, result.Failed)
	assert.Equal(t, [][2]float64{{15.3, 75.7}, {11.1, 78.6}}, windUseCase.lookups)
	assert.Equal(t, 1, reloader.calls)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TerritorySamples.WithLabelValues("failed")))
}

func TestSampleTerritoriesStopsOnCancel(t *testing.T) {
	territories := []entity.Territory{
		{Name: "Karnataka", Code: "KA", CenterLatitude: ptr(15.3), CenterLongitude: ptr(75.7)},
	}
	windUseCase := &fakeWindUseCase{}
	uc := newTerritoryUseCase(t, &fakeTerritoryGateway{territories: territories}, windUseCase, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.SampleTerritories(ctx, "req-2")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, windUseCase.lookups)
}
