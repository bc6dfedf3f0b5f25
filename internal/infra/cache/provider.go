package cache

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"adhan/config"
	"adhan/internal/domain/constants"
	"adhan/internal/domain/service"
	"adhan/internal/errors"
)

// Params holds dependencies for the cache, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Client *redis.Client
}

// New selects the cache driver from configuration.
func New(params Params) (service.Cache, error) {
	cfg := params.Config.Cache

	switch cfg.Driver {
	case constants.CacheDriverMemory, "":
		params.Logger.Info("Using in-memory timing cache")

		return NewMemoryCache(cfg.CleanupInterval), nil

	case constants.CacheDriverRedis:
		params.Logger.Info("Using Redis timing cache")

		prefix := ""
		if params.Config.Redis != nil {
			prefix = params.Config.Redis.KeyPrefix
		}

		return NewRedisCache(params.Client, prefix), nil

	default:
		return nil, errors.Errorf("unknown cache driver: %s", cfg.Driver)
	}
}

// Module provides the cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
