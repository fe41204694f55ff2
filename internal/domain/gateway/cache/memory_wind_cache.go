package cache

import (
	"context"
	"sync"

	"turbo-api/internal/domain/model"
)

type MemoryWindCache struct {
	mu      sync.RWMutex
	entries map[string]model.CacheEntry
}

var _ WindCache = (*MemoryWindCache)(nil)

func NewMemoryWindCache() *MemoryWindCache {
	return &MemoryWindCache{entries: make(map[string]model.CacheEntry)}
}

func (c *MemoryWindCache) Get(_ context.Context, key string) (*model.CacheEntry, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	return &entry, true, nil
}

// Put replaces any previous entry for key, the last writer wins.
func (c *MemoryWindCache) Put(_ context.Context, key string, entry model.CacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry
	return nil
}

func (c *MemoryWindCache) Ping(context.Context) error {
	return nil
}

func (c *MemoryWindCache) Name() string {
	return "memory"
}

func (c *MemoryWindCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
