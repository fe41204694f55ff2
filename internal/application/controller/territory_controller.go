package controller

import (
	"net/http"

	"turbo-api/internal/domain/usecase/territory"

	"github.com/labstack/echo/v4"
)

type TerritoryController struct {
	api     *echo.Group
	useCase territory.UseCase
}

func NewTerritoryController(api *echo.Group, useCase territory.UseCase) *TerritoryController {
	return &TerritoryController{api: api, useCase: useCase}
}

// InitTerritoryRoutes initializes territory routes
func (controller *TerritoryController) InitTerritoryRoutes() {
	controller.api.GET("/wind/territories", controller.ListTerritories)
	controller.api.GET("/wind/territory/:name", controller.GetTerritory)
}

// ListTerritories godoc
// @Summary List territories
// @Tags territory
// @Produce json
// @Success 200 {array} model.TerritoryResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /wind/territories [get]
func (controller *TerritoryController) ListTerritories(c echo.Context) error {
	territories, err := controller.useCase.ListTerritories(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, territories)
}

// GetTerritory godoc
// @Summary Get territory by name
// @Description Territory with its average observed wind speed and the grade of that average
// @Tags territory
// @Produce json
// @Param name path string true "Territory name"
// @Success 200 {object} model.TerritoryResponse
// @Failure 404 {object} map[string]string "Territory not found"
// @Router /wind/territory/{name} [get]
func (controller *TerritoryController) GetTerritory(c echo.Context) error {
	response, err := controller.useCase.GetTerritory(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, response)
}
