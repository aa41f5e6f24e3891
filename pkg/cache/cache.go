package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read-through cache layer. Implementations
// must treat a miss as (false, nil), leaving dest untouched.
type Cache interface {
	// Get fetches a key and unmarshals it into dest. Returns found=false on
	// a cache miss.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}
