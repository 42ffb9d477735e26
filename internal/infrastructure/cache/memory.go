package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryListingCache is an in-process listing cache for development and tests.
// It honors the same route-prefix invalidation contract as the Redis cache.
type MemoryListingCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryListingCache creates an empty in-memory listing cache
func NewMemoryListingCache() *MemoryListingCache {
	return &MemoryListingCache{entries: make(map[string]memoryEntry)}
}

// Get returns the cached payload for key, reporting whether it was present
func (c *MemoryListingCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false, nil
	}
	return entry.value, true, nil
}

// Set stores a payload under key with the given TTL
func (c *MemoryListingCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	c.entries[key] = memoryEntry{value: value, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

// Invalidate removes every cached entry whose key starts with the route
func (c *MemoryListingCache) Invalidate(_ context.Context, route string) error {
	c.mu.Lock()
	for key := range c.entries {
		if strings.HasPrefix(key, route) {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
	return nil
}

// Len reports the number of live entries, for tests
func (c *MemoryListingCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
