package bootstrap

import (
	"context"

	"digital-menu/internal/infra/cache"
	"digital-menu/internal/pkg/eventbus"
	"digital-menu/internal/usecase/queries"

	"go.uber.org/fx"
)

var EventBusModule = fx.Module("eventbus",
	fx.Provide(
		eventbus.New,
		func(b *eventbus.Bus) eventbus.Publisher { return b },
		func(b *eventbus.Bus) eventbus.Subscriber { return b },
	),
	fx.Invoke(subscribeCacheInvalidation),
)

// subscribeCacheInvalidation runs before any websocket session subscribes, so
// sessions refetch after the stale aggregate is gone.
func subscribeCacheInvalidation(lc fx.Lifecycle, bus *eventbus.Bus, c queries.RestaurantCache) {
	unsubscribe := cache.SubscribeInvalidation(bus, c)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			unsubscribe()
			return nil
		},
	})
}
