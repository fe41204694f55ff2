package controller

import (
	"net/http"

	"turbo-api/internal/domain/gateway/db"
	"turbo-api/internal/domain/model"
	"turbo-api/internal/domain/usecase/wind"
	"turbo-api/pkg/msg"
	"turbo-api/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
)

type WindController struct {
	api     *echo.Group
	useCase wind.UseCase
}

func NewWindController(api *echo.Group, useCase wind.UseCase) *WindController {
	return &WindController{api: api, useCase: useCase}
}

// InitWindRoutes initializes wind data routes
func (controller *WindController) InitWindRoutes() {
	controller.api.GET("/wind/current", controller.GetCurrentWindData)
	controller.api.GET("/wind/score/latest", controller.GetLatestScore)
	controller.api.GET("/wind/scores", controller.FindScoresByGrade)
	controller.api.GET("/wind/observations", controller.FindObservationsInBounds)
}

// GetCurrentWindData godoc
// @Summary Get current wind data
// @Description Current weather at a coordinate combined with its wind farm profitability assessment
// @Tags wind
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} model.WindDataResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 502 {object} map[string]string "Weather provider failure"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /wind/current [get]
func (controller *WindController) GetCurrentWindData(c echo.Context) error {
	lat, lon, ok := coordinates(c.QueryParam("lat"), c.QueryParam("lon"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": msg.GetMessage("wind.invalid_coordinates", c.QueryParam("lat"), c.QueryParam("lon")),
		})
	}

	data, err := controller.useCase.GetCurrentWindData(c.Request().Context(), lat, lon)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, data)
}

// GetLatestScore godoc
// @Summary Get latest persisted score
// @Tags wind
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} entity.ProfitabilityAssessment
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 404 {object} map[string]string "No score for coordinate"
// @Router /wind/score/latest [get]
func (controller *WindController) GetLatestScore(c echo.Context) error {
	lat, lon, ok := coordinates(c.QueryParam("lat"), c.QueryParam("lon"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": msg.GetMessage("wind.invalid_coordinates", c.QueryParam("lat"), c.QueryParam("lon")),
		})
	}

	score, err := controller.useCase.GetLatestScore(c.Request().Context(), lat, lon)
	if err != nil {
		return errorResponse(c, err)
	}
	if score == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "No score recorded for coordinate"})
	}
	return c.JSON(http.StatusOK, score)
}

// FindScoresByGrade godoc
// @Summary List persisted scores by grade
// @Tags wind
// @Produce json
// @Param grade query string true "Grade (A+, A, B+, B, C, D, F)"
// @Param limit query int false "Maximum results" default(20)
// @Success 200 {array} entity.ProfitabilityAssessment
// @Failure 400 {object} map[string]string "Invalid grade"
// @Router /wind/scores [get]
func (controller *WindController) FindScoresByGrade(c echo.Context) error {
	limit := numberutils.ToIntWithDefault(c.QueryParam("limit"), wind.DefaultQueryLimit)

	scores, err := controller.useCase.FindScoresByGrade(c.Request().Context(), c.QueryParam("grade"), limit)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, scores)
}

// FindObservationsInBounds godoc
// @Summary List observations inside a bounding box
// @Tags wind
// @Produce json
// @Param minLat query number true "Minimum latitude"
// @Param maxLat query number true "Maximum latitude"
// @Param minLon query number true "Minimum longitude"
// @Param maxLon query number true "Maximum longitude"
// @Param limit query int false "Maximum results" default(20)
// @Success 200 {array} entity.WindObservation
// @Failure 400 {object} map[string]string "Invalid bounds"
// @Router /wind/observations [get]
func (controller *WindController) FindObservationsInBounds(c echo.Context) error {
	minLat, minLon, okMin := coordinates(c.QueryParam("minLat"), c.QueryParam("minLon"))
	maxLat, maxLon, okMax := coordinates(c.QueryParam("maxLat"), c.QueryParam("maxLon"))
	if !okMin || !okMax {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": model.ErrInvalidCoordinates.Error()})
	}

	bounds := db.Bounds{MinLat: minLat, MaxLat: maxLat, MinLon: minLon, MaxLon: maxLon}
	limit := numberutils.ToIntWithDefault(c.QueryParam("limit"), wind.DefaultQueryLimit)

	observations, err := controller.useCase.FindObservationsInBounds(c.Request().Context(), bounds, limit)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, observations)
}

func coordinates(latParam, lonParam string) (float64, float64, bool) {
	lat, err := numberutils.ToFloat64WithError(latParam)
	if err != nil {
		return 0, 0, false
	}
	lon, err := numberutils.ToFloat64WithError(lonParam)
	if err != nil {
		return 0, 0, false
	}
	return lat, lon, true
}
