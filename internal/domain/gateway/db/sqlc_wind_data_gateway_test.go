package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"turbo-api/internal/domain/entity"
	"turbo-api/internal/domain/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var observedAt = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func TestCreateWindData(t *testing.T) {
	db, mock := newMock(t)
	obs := entity.WindObservation{
		Latitude: 12.97, Longitude: 77.59, LocationName: "Bengaluru", WindSpeed: 14, WindDirection: 270,
		Temperature: 24.5, Pressure: 1012, Humidity: 60, Timestamp: observedAt,
	}

	mock.ExpectExec(`INSERT INTO wind_data`).
		WithArgs(sqlmock.AnyArg(), 12.97, 77.59, "Bengaluru", 14.0, 270.0, 24.5, 1012.0, 60.0, "", observedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	saved, err := NewSQLCWindDataGateway(db).CreateWindData(context.Background(), obs)

	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "Bengaluru", saved.LocationName)
}

func TestCreateWindDataPropagatesErrors(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(`INSERT INTO wind_data`).WillReturnError(errors.New("connection refused"))

	saved, err := NewSQLCWindDataGateway(db).CreateWindData(context.Background(), entity.WindObservation{})

	assert.Nil(t, saved)
	assert.ErrorContains(t, err, "connection refused")
}

func TestCreateProfitabilityScore(t *testing.T) {
	db, mock := newMock(t)
	a := entity.ProfitabilityAssessment{
		Latitude: 12.97, Longitude: 77.59, LocationName: "Bengaluru", TerritoryCode: "KA", AverageWindSpeed: 14,
		CapacityFactor: 39, Score: 87.2, Grade: entity.GradeA, EstimatedEnergyYield: 6832800,
		FinancialViability: entity.ViabilityExcellent, Recommendation: "HIGHLY RECOMMENDED", CalculatedAt: observedAt,
	}

	mock.ExpectExec(`INSERT INTO profitability_scores`).
		WithArgs(sqlmock.AnyArg(), 12.97, 77.59, "Bengaluru", "KA", 14.0, "A", 87.2, 6832800.0, 39.0,
			"Excellent", "HIGHLY RECOMMENDED", observedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	saved, err := NewSQLCWindDataGateway(db).CreateProfitabilityScore(context.Background(), a)

	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, entity.GradeA, saved.Grade)
}

func TestFindAverageWindSpeedByTerritory(t *testing.T) {
	db, mock := newMock(t)
	gateway := NewSQLCWindDataGateway(db)

	mock.ExpectQuery(`SELECT AVG\(wind_speed\)`).WithArgs("TN").
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(7.25))
	mock.ExpectQuery(`SELECT AVG\(wind_speed\)`).WithArgs("XX").
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(nil))

	avg, err := gateway.FindAverageWindSpeedByTerritory(context.Background(), "TN")
	require.NoError(t, err)
	require.NotNil(t, avg)
	assert.Equal(t, 7.25, *avg)

	avg, err = gateway.FindAverageWindSpeedByTerritory(context.Background(), "XX")
	require.NoError(t, err)
	assert.Nil(t, avg)
}

var scoreRowColumns = []string{"id", "latitude", "longitude", "location_name", "territory_code", "average_wind_speed",
	"grade", "score", "estimated_energy_yield", "capacity_factor", "financial_viability", "recommendation", "calculated_at"}

func TestFindLatestScoreByCoordinates(t *testing.T) {
	db, mock := newMock(t)
	gateway := NewSQLCWindDataGateway(db)

	mock.ExpectQuery(`FROM profitability_scores\s+WHERE latitude = \$1 AND longitude = \$2`).
		WithArgs(12.97, 77.59).
		WillReturnRows(sqlmock.NewRows(scoreRowColumns).
			AddRow("id-1", 12.97, 77.59, "Bengaluru", nil, 14.0, "A", 87.2, 6832800.0, 39.0, "Excellent", "text", observedAt))
	mock.ExpectQuery(`FROM profitability_scores`).WithArgs(1.0, 2.0).
		WillReturnRows(sqlmock.NewRows(scoreRowColumns))

	got, err := gateway.FindLatestScoreByCoordinates(context.Background(), 12.97, 77.59)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "id-1", got.ID)
	assert.Empty(t, got.TerritoryCode)
	assert.Equal(t, entity.ViabilityExcellent, got.FinancialViability)
	assert.Equal(t, observedAt, got.CalculatedAt)

	got, err = gateway.FindLatestScoreByCoordinates(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFindScoresByGrade(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(`WHERE grade = \$1\s+ORDER BY score DESC`).WithArgs("A+", 5).
		WillReturnRows(sqlmock.NewRows(scoreRowColumns).
			AddRow("id-1", 1.0, 2.0, "Kutch", "GJ", 24.0, "A+", 100.0, 10.0, 57.0, "Excellent", "text", observedAt).
			AddRow("id-2", 3.0, 4.0, "Kanyakumari", "TN", 20.0, "A+", 95.0, 9.0, 51.0, "Excellent", "text", observedAt))

	got, err := NewSQLCWindDataGateway(db).FindScoresByGrade(context.Background(), entity.GradeAPlus, 5)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "GJ", got[0].TerritoryCode)
	assert.Equal(t, 95.0, got[1].Score)
}

func TestFindWindDataInBounds(t *testing.T) {
	db, mock := newMock(t)
	columns := []string{"id", "latitude", "longitude", "location_name", "wind_speed", "wind_direction",
		"temperature", "pressure", "humidity", "territory_code", "observed_at"}

	mock.ExpectQuery(`FROM wind_data\s+WHERE latitude BETWEEN`).WithArgs(8.0, 13.0, 76.0, 80.0, 50).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("w-1", 12.97, 77.59, "Bengaluru", 5.1, 200.0, 25.0, 1010.0, 70.0, "KA", observedAt))

	got, err := NewSQLCWindDataGateway(db).FindWindDataInBounds(context.Background(),
		Bounds{MinLat: 8, MaxLat: 13, MinLon: 76, MaxLon: 80}, 50)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "KA", got[0].TerritoryCode)
	assert.Equal(t, observedAt, got[0].Timestamp)
}

func TestSQLCHealth(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()
	mock.ExpectPing().WillReturnError(errors.New("db down"))

	gateway := NewSQLCHealthDBGateway(db)
	assert.Equal(t, model.StatusUp, gateway.Health(context.Background()).Status)

	down := gateway.Health(context.Background())
	assert.Equal(t, model.StatusDown, down.Status)
	assert.Equal(t, "db down", down.Details["message"])
}
