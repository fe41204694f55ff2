package redis

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Grade string  `json:"grade"`
	Score float64 `json:"score"`
}

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)

	host, portStr, err := net.SplitHostPort(server.Addr())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	client, err := NewClient(NewRedisConfig().WithHost(host).WithPort(port))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewCache(client, "wind", ttl), server
}

func TestCacheRoundTrip(t *testing.T) {
	cache, server := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "12.97,77.59", sample{Grade: "A", Score: 87.2}))
	assert.True(t, server.Exists("wind::12.97,77.59"))
	assert.Equal(t, time.Minute, server.TTL("wind::12.97,77.59"))

	var got sample
	found, err := cache.Get(ctx, "12.97,77.59", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, sample{Grade: "A", Score: 87.2}, got)
}

func TestCacheMissAndExpiry(t *testing.T) {
	cache, server := newTestCache(t, time.Minute)
	ctx := context.Background()

	var got sample
	found, err := cache.Get(ctx, "missing", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Set(ctx, "k", sample{Grade: "F"}))
	server.FastForward(2 * time.Minute)

	found, err = cache.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCacheCorruptedValue(t *testing.T) {
	cache, server := newTestCache(t, 0)
	require.NoError(t, server.Set("wind::bad", "not-json"))

	var got sample
	found, err := cache.Get(context.Background(), "bad", &got)
	assert.Error(t, err)
	assert.False(t, found)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, NewRedisConfig().Validate())
	assert.Error(t, NewRedisConfig().WithHost("").Validate())
	assert.Error(t, NewRedisConfig().WithPort(0).Validate())
	assert.Error(t, NewRedisConfig().WithDatabase(16).Validate())

	_, err := NewClient(NewRedisConfig().WithPort(70000))
	assert.Error(t, err)
}
