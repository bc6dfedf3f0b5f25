package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"adhan/internal/domain/service"
	"adhan/internal/errors"
)

// redisCache shares cached provider data across API and worker instances.
type redisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache creates a cache storing JSON values under prefix+"cache:".
func NewRedisCache(client *redis.Client, prefix string) service.Cache {
	if prefix != "" {
		prefix += ":"
	}

	return &redisCache{client: client, prefix: prefix + "cache:"}
}

func (c *redisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "failed to read cached %s", key)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, errors.Wrapf(err, "failed to decode cached %s", key)
	}

	return true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", key)
	}
	if err := c.client.Set(ctx, c.prefix+key, data, ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to write cached %s", key)
	}

	return nil
}
