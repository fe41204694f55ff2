package controller

import (
	"errors"
	"net/http"

	"turbo-api/internal/domain/model"
	"turbo-api/pkg/log"
	"turbo-api/pkg/msg"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// errorResponse maps domain errors to their status code and writes the {"error": ...} body
func errorResponse(c echo.Context, err error) error {
	status, message := http.StatusInternalServerError, msg.GetMessage("wind.internal_error")

	switch {
	case errors.Is(err, model.ErrInvalidCoordinates), errors.Is(err, model.ErrInvalidGrade):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, model.ErrTerritoryNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, model.ErrProviderDataMalformed):
		status, message = http.StatusBadGateway, msg.GetMessage("wind.provider_malformed")
	case errors.Is(err, model.ErrProviderUnavailable):
		status, message = http.StatusBadGateway, msg.GetMessage("wind.provider_unavailable")
	case errors.Is(err, model.ErrPersistenceFailure):
		message = msg.GetMessage("wind.persistence_failed")
	}

	if status >= http.StatusInternalServerError {
		log.Error(message, zap.Error(err), zap.String("uri", c.Request().RequestURI))
	}
	return c.JSON(status, map[string]string{"error": message})
}
