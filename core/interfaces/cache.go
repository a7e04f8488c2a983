package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations.
// Implementations may be backed by memory, Redis, SQLite, or anything
// else that can store bytes under a key with a TTL.
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached bytes or an error if the key is missing or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache under the given key.
	// A ttl of zero means the implementation's default expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key from the cache. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error
}
