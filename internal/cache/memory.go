package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache implements in-memory caching of extraction results
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache. A run-scoped cache can pass
// gocache.NoExpiration via defaultTTL.
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves cached matches for a key
func (c *MemoryCache) Get(key string) ([]string, bool) {
	if val, found := c.cache.Get(key); found {
		return val.([]string), true
	}
	return nil, false
}

// Set stores matches for a key
func (c *MemoryCache) Set(key string, matches []string) {
	c.cache.Set(key, matches, gocache.DefaultExpiration)
}

// Clear removes all cached entries
func (c *MemoryCache) Clear() {
	c.cache.Flush()
}
