package cache

import (
	"context"
	"time"
)

// Cache is the key-value contract the services depend on. Implementations
// may be Redis, Memcached or in-memory; entries expire autonomously after
// their TTL even without an explicit Delete.
type Cache interface {
	// Get returns the stored value for key. A miss (absent or expired key)
	// is reported as found == false, never as an empty value: callers must
	// be able to distinguish "no entry" from a stored empty string.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key for at most ttl.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Delete removes the given keys. Deleting an absent key is not an error.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
