package cache

import (
	"context"

	"turbo-api/internal/domain/model"
	"turbo-api/pkg/util/numberutils"
)

// WindCache stores combined wind responses keyed by exact coordinate pair.
// Freshness is decided by the caller from CacheEntry.CreatedAt.
type WindCache interface {
	Get(ctx context.Context, key string) (*model.CacheEntry, bool, error)
	Put(ctx context.Context, key string, entry model.CacheEntry) error
	Ping(ctx context.Context) error
	Name() string
}

// Key builds the cache key for a coordinate. Distinct float values always produce distinct keys.
func Key(lat, lon float64) string {
	return numberutils.FormatExact(lat) + "," + numberutils.FormatExact(lon)
}
