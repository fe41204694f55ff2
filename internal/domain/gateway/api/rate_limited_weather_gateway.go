package api

import (
	"context"
	"fmt"

	"turbo-api/internal/domain/model"
	"turbo-api/internal/domain/model/external"

	"golang.org/x/time/rate"
)

// rateLimitedWeatherGateway holds calls until the limiter grants a token or ctx ends
type rateLimitedWeatherGateway struct {
	gateway WeatherGateway
	limiter *rate.Limiter
}

// NewRateLimitedWeatherGateway wraps gateway. rps may be fractional, rps <= 0 disables limiting.
func NewRateLimitedWeatherGateway(gateway WeatherGateway, rps float64, burst int) WeatherGateway {
	if rps <= 0 {
		return gateway
	}
	if burst < 1 {
		burst = 1
	}
	return &rateLimitedWeatherGateway{
		gateway: gateway,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *rateLimitedWeatherGateway) GetCurrentWeather(ctx context.Context, lat, lon float64) (*external.CurrentWeather, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait canceled: %w", model.ErrProviderUnavailable, err)
	}
	return r.gateway.GetCurrentWeather(ctx, lat, lon)
}
