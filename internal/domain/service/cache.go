package service

import (
	"context"
	"time"
)

// Cache is a TTL cache of JSON-serializable values shared by the timing providers.
type Cache interface {
	// Get decodes the cached value into dest. found is false on a miss or expiry.
	Get(ctx context.Context, key string, dest any) (found bool, err error)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}
