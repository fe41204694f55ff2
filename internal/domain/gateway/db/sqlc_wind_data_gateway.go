package db

import (
	"context"
	"database/sql"
	"errors"

	"turbo-api/internal/domain/entity"

	"github.com/google/uuid"
)

const (
	windDataColumns = `id, latitude, longitude, location_name, wind_speed, wind_direction,
		temperature, pressure, humidity, territory_code, observed_at`
	scoreColumns = `id, latitude, longitude, location_name, territory_code, average_wind_speed, grade, score,
		estimated_energy_yield, capacity_factor, financial_viability, recommendation, calculated_at`
)

type SQLCWindDataGateway struct {
	DB *sql.DB
}

var _ WindDataGateway = (*SQLCWindDataGateway)(nil)

func NewSQLCWindDataGateway(db *sql.DB) *SQLCWindDataGateway {
	return &SQLCWindDataGateway{DB: db}
}

func (gateway *SQLCWindDataGateway) CreateWindData(ctx context.Context, obs entity.WindObservation) (*entity.WindObservation, error) {
	obs.ID = uuid.New().String()

	_, err := gateway.DB.ExecContext(ctx, `
		INSERT INTO wind_data (`+windDataColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), $11)`,
		obs.ID, obs.Latitude, obs.Longitude, obs.LocationName, obs.WindSpeed, obs.WindDirection,
		obs.Temperature, obs.Pressure, obs.Humidity, obs.TerritoryCode, obs.Timestamp.UTC())
	if err != nil {
		return nil, err
	}
	return &obs, nil
}

func (gateway *SQLCWindDataGateway) CreateProfitabilityScore(ctx context.Context, a entity.ProfitabilityAssessment) (*entity.ProfitabilityAssessment, error) {
	a.ID = uuid.New().String()

	_, err := gateway.DB.ExecContext(ctx, `
		INSERT INTO profitability_scores (`+scoreColumns+`)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10, $11, $12, $13)`,
		a.ID, a.Latitude, a.Longitude, a.LocationName, a.TerritoryCode, a.AverageWindSpeed, string(a.Grade), a.Score,
		a.EstimatedEnergyYield, a.CapacityFactor, string(a.FinancialViability), a.Recommendation, a.CalculatedAt.UTC())
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (gateway *SQLCWindDataGateway) FindAverageWindSpeedByTerritory(ctx context.Context, territoryCode string) (*float64, error) {
	var avg sql.NullFloat64
	err := gateway.DB.QueryRowContext(ctx, `
		SELECT AVG(wind_speed)
		FROM wind_data
		WHERE territory_code = $1`, territoryCode).Scan(&avg)
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

func (gateway *SQLCWindDataGateway) FindLatestScoreByCoordinates(ctx context.Context, lat, lon float64) (*entity.ProfitabilityAssessment, error) {
	row := gateway.DB.QueryRowContext(ctx, `
		SELECT `+scoreColumns+`
		FROM profitability_scores
		WHERE latitude = $1 AND longitude = $2
		ORDER BY calculated_at DESC
		LIMIT 1`, lat, lon)

	a, err := scanScore(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (gateway *SQLCWindDataGateway) FindScoresByGrade(ctx context.Context, grade entity.Grade, limit int) (results []entity.ProfitabilityAssessment, err error) {
	rows, err := gateway.DB.QueryContext(ctx, `
		SELECT `+scoreColumns+`
		FROM profitability_scores
		WHERE grade = $1
		ORDER BY score DESC
		LIMIT $2`, string(grade), limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	results = make([]entity.ProfitabilityAssessment, 0)
	for rows.Next() {
		a, err := scanScore(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, a)
	}
	return results, rows.Err()
}

func (gateway *SQLCWindDataGateway) FindWindDataInBounds(ctx context.Context, bounds Bounds, limit int) (results []entity.WindObservation, err error) {
	rows, err := gateway.DB.QueryContext(ctx, `
		SELECT `+windDataColumns+`
		FROM wind_data
		WHERE latitude BETWEEN $1 AND $2
		  AND longitude BETWEEN $3 AND $4
		ORDER BY observed_at DESC
		LIMIT $5`, bounds.MinLat, bounds.MaxLat, bounds.MinLon, bounds.MaxLon, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	results = make([]entity.WindObservation, 0)
	for rows.Next() {
		var obs entity.WindObservation
		var territory sql.NullString
		if err := rows.Scan(&obs.ID, &obs.Latitude, &obs.Longitude, &obs.LocationName, &obs.WindSpeed,
			&obs.WindDirection, &obs.Temperature, &obs.Pressure, &obs.Humidity, &territory, &obs.Timestamp); err != nil {
			return nil, err
		}
		obs.TerritoryCode = territory.String
		results = append(results, obs)
	}
	return results, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScore(row rowScanner) (entity.ProfitabilityAssessment, error) {
	var a entity.ProfitabilityAssessment
	var territory sql.NullString
	var grade, viability string
	err := row.Scan(&a.ID, &a.Latitude, &a.Longitude, &a.LocationName, &territory, &a.AverageWindSpeed, &grade,
		&a.Score, &a.EstimatedEnergyYield, &a.CapacityFactor, &viability, &a.Recommendation, &a.CalculatedAt)
	if err != nil {
		return a, err
	}
	a.TerritoryCode = territory.String
	a.Grade = entity.Grade(grade)
	a.FinancialViability = entity.Viability(viability)
	return a, nil
}
