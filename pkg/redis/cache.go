package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores JSON values under CacheName::key with a fixed TTL
type Cache struct {
	client    *Client
	cacheName string
	ttl       time.Duration
}

// NewCache creates a new cache instance. A zero ttl stores keys without expiration.
func NewCache(client *Client, cacheName string, ttl time.Duration) *Cache {
	return &Cache{client: client, cacheName: cacheName, ttl: ttl}
}

// buildCacheKey constructs the full cache key using CacheName::cacheKey format
func (c *Cache) buildCacheKey(key string) string {
	if c.cacheName != "" {
		return c.cacheName + "::" + key
	}
	return key
}

// Get decodes the value stored at key into dest, found is false on a miss
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, found, err := c.client.GetBytes(ctx, c.buildCacheKey(key))
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to deserialize value: %w", err)
	}
	return true, nil
}

// Set stores value as JSON
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}
	return c.client.SetBytes(ctx, c.buildCacheKey(key), data, c.ttl)
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Delete(ctx, c.buildCacheKey(key))
}

// Ping checks the backing connection
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx)
}
