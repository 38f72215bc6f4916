package bootstrap

import (
	"context"
	"log/slog"

	"digital-menu/internal/infra/cache"
	"digital-menu/internal/pkg/config"
	"digital-menu/internal/pkg/errs"
	"digital-menu/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRestaurantCache,
	),
)

// NewRestaurantCache falls back to a no-op cache when REDIS_ADDR is unset.
func NewRestaurantCache(lc fx.Lifecycle, cfg config.Config) queries.RestaurantCache {
	if !cfg.Redis.Enabled() {
		slog.Info("redis disabled, public restaurant cache off")
		return cache.NopRestaurantCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errs.Wrap(err, "failed to ping redis")
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewRedisRestaurantCache(client, cfg.Redis.TTL)
}
