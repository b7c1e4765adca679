package cache

import (
	"context"
	"sync"

	"github.com/hero4147/cosmetic-compare-backend/internal/domain"
)

// MemoryCache is a thread-safe in-memory store of compare results keyed by
// the raw query string. Entries are written once per key and kept for the
// process lifetime; there is no TTL, capacity limit, or persistence.
type MemoryCache struct {
	data  map[string]*domain.CompareResult
	mutex sync.RWMutex
}

// NewMemoryCache creates a new in-memory result cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		data: make(map[string]*domain.CompareResult),
	}
}

// Get retrieves the cached result for a query key
func (c *MemoryCache) Get(ctx context.Context, key string) (*domain.CompareResult, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	result, exists := c.data[key]
	if !exists {
		return nil, domain.ErrCacheMiss
	}
	return result, nil
}

// Set stores a result under a query key, overwriting any previous entry
func (c *MemoryCache) Set(ctx context.Context, key string, value *domain.CompareResult) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = value
	return nil
}

// Size returns the current number of cached results (for debugging/monitoring)
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// Clear removes all cached results
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data = make(map[string]*domain.CompareResult)
}
