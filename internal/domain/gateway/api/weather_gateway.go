package api

import (
	"context"

	"turbo-api/internal/domain/model/external"
)

// WeatherGateway fetches current conditions from the weather provider.
type WeatherGateway interface {
	// GetCurrentWeather returns the reading for the coordinate. Errors wrap
	// model.ErrProviderUnavailable or model.ErrProviderDataMalformed.
	GetCurrentWeather(ctx context.Context, lat, lon float64) (*external.CurrentWeather, error)
}
