package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"turbo-api/pkg/log"
	"turbo-api/pkg/msg"
)

// Setup registers request id, panic recovery, CORS and request logging in that order.
func Setup(e *echo.Echo, allowOrigins []string) {
	e.Use(echomw.RequestID())
	e.Use(echomw.Recover())
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	SetupRequestLogger(e)
}

// SetupRequestLogger registers the request logging middleware with custom log output.
func SetupRequestLogger(e *echo.Echo) {
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		HandleError:  true,
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return strings.HasSuffix(path, "/health") || path == "/metrics"
		},
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error == nil {
				log.Info(msg.GetMessage("app.request.done", v.Method, v.URI, v.Status, v.Latency.String(), v.RequestID), fields...)
				return nil
			}
			log.Error(msg.GetMessage("app.request.failed", v.Method, v.URI, v.Status, v.Latency.String(), v.RequestID, v.Error),
				append(fields, zap.Error(v.Error))...)
			return nil
		},
	}))
}
