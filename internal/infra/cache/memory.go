// Package cache provides the TTL cache drivers used by the timing providers.
package cache

import (
	"context"
	"encoding/json"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"adhan/internal/domain/service"
	"adhan/internal/errors"
)

// memoryCache keeps JSON-encoded values in process memory.
type memoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates an in-process cache that evicts expired entries every cleanupInterval.
func NewMemoryCache(cleanupInterval time.Duration) service.Cache {
	return &memoryCache{
		store: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

func (c *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := c.store.Get(key)
	if !ok {
		return false, nil
	}
	data, ok := raw.([]byte)
	if !ok {
		return false, errors.Errorf("unexpected cached type %T for %s", raw, key)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, errors.Wrapf(err, "failed to decode cached %s", key)
	}

	return true, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", key)
	}
	c.store.Set(key, data, ttl)

	return nil
}
