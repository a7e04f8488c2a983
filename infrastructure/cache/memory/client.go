// ABOUTME: In-memory cache implementation backed by go-cache
// ABOUTME: Default backend when no external cache is configured

package memory

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache implements the Cache interface with an in-process store.
// go-cache handles TTL bookkeeping and expired-entry janitoring.
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates a cache with the given default expiration for
// entries stored with a zero TTL. Zero means one hour.
func NewMemoryCache(defaultExpiration time.Duration) *MemoryCache {
	if defaultExpiration <= 0 {
		defaultExpiration = time.Hour
	}
	return &MemoryCache{
		store: gocache.New(defaultExpiration, 10*time.Minute),
	}
}

// Get retrieves a value from the cache.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, found := c.store.Get(key)
	if !found {
		return nil, errors.New("key not found")
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, errors.New("key not found")
	}

	// Copy so callers cannot mutate the cached bytes.
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Set stores a value. A zero ttl uses the cache's default expiration.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	c.store.Set(key, stored, ttl)
	return nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.store.Delete(key)
	return nil
}
