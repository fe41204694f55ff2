package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"turbo-api/internal/domain/model"
	"turbo-api/internal/domain/model/external"
	"turbo-api/pkg/http"

	"github.com/sony/gobreaker"
	"github.com/tidwall/gjson"
)

const unknownLocation = "Unknown"

type OpenWeatherConfig struct {
	BaseURL string
	APIKey  string
	// Units is sent as the units query parameter, metric by default
	Units string
	// BreakerFailures consecutive failures open the circuit for BreakerTimeout
	BreakerFailures uint32
	BreakerTimeout  time.Duration
	ClientOptions   http.ClientOptions
}

type openWeatherGateway struct {
	httpClient *http.Client
	apiKey     string
	units      string
	breaker    *gobreaker.CircuitBreaker
}

var _ WeatherGateway = (*openWeatherGateway)(nil)

// NewOpenWeatherGateway creates the OpenWeatherMap current weather gateway
func NewOpenWeatherGateway(cfg OpenWeatherConfig) WeatherGateway {
	if cfg.Units == "" {
		cfg.Units = "metric"
	}
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = 5
	}
	if cfg.BreakerTimeout == 0 {
		cfg.BreakerTimeout = 30 * time.Second
	}
	failures := cfg.BreakerFailures

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweathermap",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		// a malformed body means the provider answered, it does not count against the circuit
		IsSuccessful: func(err error) bool {
			var decodeErr *http.DecodeError
			return err == nil || errors.As(err, &decodeErr)
		},
	})

	return &openWeatherGateway{
		httpClient: http.NewHttpClient(cfg.BaseURL, cfg.ClientOptions),
		apiKey:     cfg.APIKey,
		units:      cfg.Units,
		breaker:    breaker,
	}
}

func (g *openWeatherGateway) GetCurrentWeather(ctx context.Context, lat, lon float64) (*external.CurrentWeather, error) {
	result, err := g.breaker.Execute(func() (interface{}, error) {
		successResp, _, _, err := g.httpClient.Request().
			WithContext(ctx).
			WithMethod(http.GET).
			WithQueryParams(map[string]string{
				"lat":   strconv.FormatFloat(lat, 'f', -1, 64),
				"lon":   strconv.FormatFloat(lon, 'f', -1, 64),
				"appid": g.apiKey,
				"units": g.units,
			}).
			WithSuccessResp(&json.RawMessage{}).
			WithErrorResp(&external.OpenWeatherErrorResponse{}).
			Execute()
		if err != nil {
			return nil, err
		}
		return *successResp.(*json.RawMessage), nil
	})
	if err != nil {
		var decodeErr *http.DecodeError
		if errors.As(err, &decodeErr) {
			return nil, fmt.Errorf("%w: %w", model.ErrProviderDataMalformed, err)
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: circuit %s: %w", model.ErrProviderUnavailable, g.breaker.State(), err)
		}
		return nil, fmt.Errorf("%w: %w", model.ErrProviderUnavailable, err)
	}

	return ParseCurrentWeather(result.(json.RawMessage))
}

// ParseCurrentWeather reads an OpenWeatherMap document leniently: missing or null numeric fields are
// 0 and a missing or null name is "Unknown". Only a body that is not JSON is rejected.
func ParseCurrentWeather(body []byte) (*external.CurrentWeather, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: body is not valid JSON", model.ErrProviderDataMalformed)
	}

	fields := gjson.GetManyBytes(body, "name", "wind.speed", "wind.deg", "main.temp", "main.pressure", "main.humidity")

	name := unknownLocation
	if fields[0].Exists() && fields[0].Type != gjson.Null {
		name = fields[0].String()
	}

	return &external.CurrentWeather{
		Name:          name,
		WindSpeed:     floatOrZero(fields[1]),
		WindDirection: floatOrZero(fields[2]),
		Temperature:   floatOrZero(fields[3]),
		Pressure:      floatOrZero(fields[4]),
		Humidity:      floatOrZero(fields[5]),
	}, nil
}

func floatOrZero(r gjson.Result) float64 {
	if !r.Exists() {
		return 0
	}
	return r.Float()
}
