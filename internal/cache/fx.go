package cache

import (
	"context"
	"errors"
	"strings"

	redis "github.com/redis/go-redis/v9"
	"github.com/smallbiznis/sitesapi/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("cache",
	fx.Provide(NewStore),
	fx.Provide(NewSiteCache),
)

// NewStore builds the backend named by CACHE_DRIVER. The none driver yields a nil Store.
func NewStore(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (Store, error) {
	switch cfg.Cache.Driver {
	case config.CacheDriverMemory:
		log.Info("site cache enabled", zap.String("driver", config.CacheDriverMemory))
		return NewMemoryStore(), nil
	case config.CacheDriverRedis:
		addr := strings.TrimSpace(cfg.Cache.RedisAddr)
		if addr == "" {
			return nil, errors.New("cache redis addr is required")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: strings.TrimSpace(cfg.Cache.RedisPassword),
			DB:       cfg.Cache.RedisDB,
		})
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return client.Close()
			},
		})
		log.Info("site cache enabled", zap.String("driver", config.CacheDriverRedis), zap.String("addr", addr))
		return NewRedisStore(client), nil
	default:
		return nil, nil
	}
}
