package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	requests  []string
	successes int
	failures  int
}

func (r *recordingLogger) LogRequest(_ string, url string, _ map[string]string, _ string) {
	r.requests = append(r.requests, url)
}

func (r *recordingLogger) LogResponseSuccess(string, string, map[string]string, string, int, string, int64) {
	r.successes++
}

func (r *recordingLogger) LogResponseError(string, string, map[string]string, string, int, string, int64, error) {
	r.failures++
}

func TestExecuteDecodesJSONAndEncodesQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/2.5/weather", r.URL.Path)
		assert.Equal(t, "12.97", r.URL.Query().Get("lat"))
		assert.Equal(t, "a b", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"name":"Bengaluru"}`))
	}))
	defer server.Close()

	logger := &recordingLogger{}
	client := NewHttpClient(server.URL+"/data/2.5/", ClientOptions{Logger: logger})

	var out struct {
		Name string `json:"name"`
	}
	resp, _, status, err := client.Request().
		WithContext(context.Background()).
		WithPath("weather").
		WithQueryParams(map[string]string{"lat": "12.97", "q": "a b", "appid": "secret"}).
		WithSuccessResp(&out).
		Execute()

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Same(t, &out, resp)
	assert.Equal(t, "Bengaluru", out.Name)
	require.Len(t, logger.requests, 1)
	assert.Contains(t, logger.requests[0], "appid=%2A%2A%2A")
	assert.NotContains(t, logger.requests[0], "secret")
	assert.Equal(t, 1, logger.successes)
}

func TestExecuteReturnsStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"cod":429,"message":"limit"}`))
	}))
	defer server.Close()

	var errBody struct {
		Message string `json:"message"`
	}
	_, errResp, status, err := NewHttpClient(server.URL, ClientOptions{}).Request().
		WithErrorResp(&errBody).
		Execute()

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.True(t, IsStatus(err, http.StatusTooManyRequests))
	assert.NotNil(t, errResp)
	assert.Equal(t, "limit", errBody.Message)
}

func TestExecuteRawMessageRejectsInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}))
	defer server.Close()

	var raw json.RawMessage
	_, _, status, err := NewHttpClient(server.URL, ClientOptions{}).Request().WithSuccessResp(&raw).Execute()

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, http.StatusOK, status)
}

func TestExecuteDismiss404(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, _, status, err := NewHttpClient(server.URL, ClientOptions{Dismiss404: true}).Request().Execute()

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestExecuteHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, _, _, err := NewHttpClient(server.URL, ClientOptions{}).Request().WithContext(ctx).Execute()

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestExecuteSendsJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "turbo", r.Header.Get("X-Client"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "A", body["grade"])
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{DefaultHeaders: map[string]string{"X-Client": "turbo"}})
	_, _, status, err := client.Request().
		WithMethod(POST).
		WithPath("/events").
		WithBody(map[string]string{"grade": "A"}).
		Execute()

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
}
