package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"digital-menu/internal/pkg/errs"
	"digital-menu/internal/pkg/eventbus"
	"digital-menu/internal/pkg/metrics"
	"digital-menu/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

// Keys share a hash tag so the fill script touches a single slot.
func viewKey(slug string) string { return "restaurant:{" + slug + "}:view" }
func genKey(slug string) string  { return "restaurant:{" + slug + "}:gen" }

// fillScript writes the aggregate only if the generation is unchanged.
// KEYS: view, gen. ARGV: expected generation, payload, ttl in ms (0 = none).
var fillScript = redis.NewScript(`
local gen = redis.call("GET", KEYS[2]) or "0"
if gen ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
else
	redis.call("SET", KEYS[1], ARGV[2])
end
return 1
`)

// RedisRestaurantCache is a read-through cache for the public aggregate.
type RedisRestaurantCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRestaurantCache(client *redis.Client, ttl time.Duration) *RedisRestaurantCache {
	return &RedisRestaurantCache{client: client, ttl: ttl}
}

func (c *RedisRestaurantCache) Get(ctx context.Context, slug string) (*queries.RestaurantView, int64, error) {
	vals, err := c.client.MGet(ctx, viewKey(slug), genKey(slug)).Result()
	if err != nil {
		metrics.CacheLookups.WithLabelValues("error").Inc()
		return nil, 0, errs.Wrap(err, "failed to read restaurant cache")
	}

	raw, hit := vals[0].(string)
	if !hit {
		gen, err := parseGeneration(vals[1])
		if err != nil {
			metrics.CacheLookups.WithLabelValues("error").Inc()
			return nil, 0, err
		}
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return nil, gen, nil
	}

	var v queries.RestaurantView
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		metrics.CacheLookups.WithLabelValues("error").Inc()
		return nil, 0, errs.Wrap(err, "failed to decode cached restaurant")
	}
	metrics.CacheLookups.WithLabelValues("hit").Inc()
	return &v, 0, nil
}

func parseGeneration(val any) (int64, error) {
	s, ok := val.(string)
	if !ok {
		return 0, nil
	}
	gen, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.Wrap(err, "malformed restaurant cache generation")
	}
	return gen, nil
}

func (c *RedisRestaurantCache) Set(ctx context.Context, v *queries.RestaurantView, gen int64) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errs.Wrap(err, "failed to encode restaurant")
	}
	keys := []string{viewKey(v.Slug), genKey(v.Slug)}
	stored, err := fillScript.Run(ctx, c.client, keys, gen, raw, c.ttl.Milliseconds()).Int()
	if err != nil {
		return errs.Wrap(err, "failed to write restaurant cache")
	}
	if stored == 0 {
		slog.Debug("restaurant cache fill skipped, invalidated during read", "slug", v.Slug)
	}
	return nil
}

// Invalidate bumps the generation before dropping the view so that reads
// already in flight cannot refill it.
func (c *RedisRestaurantCache) Invalidate(ctx context.Context, slug string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey(slug))
		pipe.Del(ctx, viewKey(slug))
		return nil
	})
	if err != nil {
		return errs.Wrap(err, "failed to invalidate restaurant cache")
	}
	return nil
}

// NopRestaurantCache is used when no Redis address is configured.
type NopRestaurantCache struct{}

func (NopRestaurantCache) Get(context.Context, string) (*queries.RestaurantView, int64, error) {
	return nil, 0, nil
}
func (NopRestaurantCache) Set(context.Context, *queries.RestaurantView, int64) error { return nil }
func (NopRestaurantCache) Invalidate(context.Context, string) error                  { return nil }

type invalidator interface {
	Invalidate(ctx context.Context, slug string) error
}

// SubscribeInvalidation drops the cached aggregate whenever any part of a
// restaurant changes.
func SubscribeInvalidation(bus eventbus.Subscriber, cache invalidator) eventbus.Unsubscribe {
	return eventbus.SubscribeAll(bus, func(ctx context.Context, ev eventbus.Event) {
		if ev.Slug == "" {
			return
		}
		if err := cache.Invalidate(ctx, ev.Slug); err != nil {
			slog.Warn("restaurant cache invalidation failed",
				"slug", ev.Slug,
				"topic", string(ev.Topic),
				"error", err.Error())
		}
	})
}
