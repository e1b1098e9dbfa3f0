package cache

import gocache "github.com/patrickmn/go-cache"

// NewRunCache creates a memory cache scoped to a single batch run: entries
// never expire and no cleanup goroutine is started.
func NewRunCache() *MemoryCache {
	return NewMemoryCache(gocache.NoExpiration, 0)
}
