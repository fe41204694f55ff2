package cache

import (
	"context"

	"turbo-api/internal/domain/model"
	"turbo-api/pkg/redis"
)

// RedisWindCache shares entries between instances. Keys expire after the freshness window.
type RedisWindCache struct {
	cache *redis.Cache
}

var _ WindCache = (*RedisWindCache)(nil)

func NewRedisWindCache(cache *redis.Cache) *RedisWindCache {
	return &RedisWindCache{cache: cache}
}

func (c *RedisWindCache) Get(ctx context.Context, key string) (*model.CacheEntry, bool, error) {
	var entry model.CacheEntry
	found, err := c.cache.Get(ctx, key, &entry)
	if err != nil || !found {
		return nil, false, err
	}
	return &entry, true, nil
}

func (c *RedisWindCache) Put(ctx context.Context, key string, entry model.CacheEntry) error {
	return c.cache.Set(ctx, key, entry)
}

func (c *RedisWindCache) Ping(ctx context.Context) error {
	return c.cache.Ping(ctx)
}

func (c *RedisWindCache) Name() string {
	return "redis"
}
