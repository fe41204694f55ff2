package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"turbo-api/internal/domain/model"
	"turbo-api/internal/domain/usecase/report"
	"turbo-api/pkg/msg"

	"github.com/labstack/echo/v4"
)

type ReportController struct {
	api     *echo.Group
	useCase report.UseCase
}

func NewReportController(api *echo.Group, useCase report.UseCase) *ReportController {
	return &ReportController{api: api, useCase: useCase}
}

// InitReportRoutes initializes report routes
func (controller *ReportController) InitReportRoutes() {
	controller.api.POST("/wind/report/generate", controller.GenerateReport)
}

// GenerateReport godoc
// @Summary Generate feasibility report
// @Description Renders a PDF feasibility report from a wind data result
// @Tags report
// @Accept json
// @Produce application/pdf
// @Param data body model.WindDataResponse true "Wind data result"
// @Success 200 {file} file "PDF report"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /wind/report/generate [post]
func (controller *ReportController) GenerateReport(c echo.Context) error {
	var data model.WindDataResponse
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("report.invalid_body")})
	}

	doc, err := controller.useCase.GenerateFeasibilityReport(c.Request().Context(), data)
	if err != nil {
		return errorResponse(c, err)
	}

	header := c.Response().Header()
	header.Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.FileName))
	header.Set(echo.HeaderContentLength, strconv.Itoa(len(doc.Content)))
	return c.Blob(http.StatusOK, doc.ContentType, doc.Content)
}
