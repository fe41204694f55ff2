package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"turbo-api/internal/domain/entity"
	"turbo-api/internal/domain/gateway/db"
	"turbo-api/internal/domain/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWindUseCase struct {
	data     *model.WindDataResponse
	err      error
	score    *entity.ProfitabilityAssessment
	lat, lon float64
	grade    string
	limit    int
	bounds   db.Bounds
}

func (s *stubWindUseCase) GetCurrentWindData(_ context.Context, lat, lon float64) (*model.WindDataResponse, error) {
	s.lat, s.lon = lat, lon
	return s.data, s.err
}

func (s *stubWindUseCase) GetAverageWindSpeedForTerritory(context.Context, string) (*float64, error) {
	return nil, s.err
}

func (s *stubWindUseCase) GetLatestScore(_ context.Context, lat, lon float64) (*entity.ProfitabilityAssessment, error) {
	s.lat, s.lon = lat, lon
	return s.score, s.err
}

func (s *stubWindUseCase) FindScoresByGrade(_ context.Context, grade string, limit int) ([]entity.ProfitabilityAssessment, error) {
	s.grade, s.limit = grade, limit
	if s.err != nil {
		return nil, s.err
	}
	return []entity.ProfitabilityAssessment{{Grade: entity.Grade(grade)}}, nil
}

func (s *stubWindUseCase) FindObservationsInBounds(_ context.Context, bounds db.Bounds, limit int) ([]entity.WindObservation, error) {
	s.bounds, s.limit = bounds, limit
	return []entity.WindObservation{}, s.err
}

func newWindServer(useCase *stubWindUseCase) *echo.Echo {
	e := echo.New()
	NewWindController(e.Group("/api"), useCase).InitWindRoutes()
	return e
}

func doGet(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestGetCurrentWindData(t *testing.T) {
	useCase := &stubWindUseCase{data: &model.WindDataResponse{Latitude: 12.97, Longitude: 77.59, Grade: "A", Score: 87.2}}
	e := newWindServer(useCase)

	rec := doGet(e, "/api/wind/current?lat=12.97&lon=77.59")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 12.97, useCase.lat)
	assert.Equal(t, 77.59, useCase.lon)
	var body model.WindDataResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "A", body.Grade)
	assert.Equal(t, 87.2, body.Score)
}

func TestGetCurrentWindDataBadParams(t *testing.T) {
	e := newWindServer(&stubWindUseCase{})

	for _, target := range []string{
		"/api/wind/current",
		"/api/wind/current?lat=abc&lon=1",
		"/api/wind/current?lat=1",
		"/api/wind/current?lat=NaN&lon=1",
	} {
		rec := doGet(e, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestGetCurrentWindDataErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: latitude 91", model.ErrInvalidCoordinates), http.StatusBadRequest},
		{fmt.Errorf("%w: timeout", model.ErrProviderUnavailable), http.StatusBadGateway},
		{fmt.Errorf("%w: not json", model.ErrProviderDataMalformed), http.StatusBadGateway},
		{fmt.Errorf("%w: insert", model.ErrPersistenceFailure), http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		e := newWindServer(&stubWindUseCase{err: c.err})
		rec := doGet(e, "/api/wind/current?lat=91&lon=0")
		assert.Equal(t, c.status, rec.Code, c.err.Error())
		assert.NotEmpty(t, errorBody(t, rec))
	}
}

func TestGetCurrentWindDataHidesInternalErrors(t *testing.T) {
	e := newWindServer(&stubWindUseCase{err: errors.New("pq: password authentication failed")})

	rec := doGet(e, "/api/wind/current?lat=1&lon=1")

	assert.Equal(t, "Unexpected error processing wind data", errorBody(t, rec))
}

func TestGetLatestScore(t *testing.T) {
	useCase := &stubWindUseCase{}
	e := newWindServer(useCase)

	rec := doGet(e, "/api/wind/score/latest?lat=12.97&lon=77.59")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	useCase.score = &entity.ProfitabilityAssessment{Grade: entity.GradeB}
	rec = doGet(e, "/api/wind/score/latest?lat=12.97&lon=77.59")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"grade":"B"`)
}

func TestFindScoresByGrade(t *testing.T) {
	useCase := &stubWindUseCase{}
	e := newWindServer(useCase)

	rec := doGet(e, "/api/wind/scores?grade=A%2B&limit=5")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "A+", useCase.grade)
	assert.Equal(t, 5, useCase.limit)

	useCase.err = fmt.Errorf("%w: \"E\"", model.ErrInvalidGrade)
	rec = doGet(e, "/api/wind/scores?grade=E")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFindObservationsInBounds(t *testing.T) {
	useCase := &stubWindUseCase{}
	e := newWindServer(useCase)

	rec := doGet(e, "/api/wind/observations?minLat=10&maxLat=15&minLon=75&maxLon=80")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, db.Bounds{MinLat: 10, MaxLat: 15, MinLon: 75, MaxLon: 80}, useCase.bounds)
	assert.Equal(t, 20, useCase.limit)

	rec = doGet(e, "/api/wind/observations?minLat=10&maxLat=15")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
