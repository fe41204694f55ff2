package http

import (
	"turbo-api/pkg/log"

	"go.uber.org/zap"
)

// HTTPLogger receives request and response events from a Client.
type HTTPLogger interface {
	// LogRequest is called before the request is sent
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called after a 2xx response has been read
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a transport failure or a non-2xx response
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string, string) {}

func (noopLogger) LogResponseSuccess(string, string, map[string]string, string, int, string, int64) {}

func (noopLogger) LogResponseError(string, string, map[string]string, string, int, string, int64, error) {
}

// ZapLogger writes client events through pkg/log. Bodies are only logged at debug level.
type ZapLogger struct {
	Name string
}

func (l ZapLogger) LogRequest(method, url string, _ map[string]string, body string) {
	log.Debug("http request",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.String("body", body))
}

func (l ZapLogger) LogResponseSuccess(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64) {
	log.Info("http response",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
	log.Debug("http response body", zap.String("client", l.Name), zap.String("body", responseBody))
}

func (l ZapLogger) LogResponseError(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("http response error",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("body", responseBody),
		zap.Error(err))
}
