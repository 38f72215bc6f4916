//go:build e2e

package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"digital-menu/tests/common/builder"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisRestaurantCache(t *testing.T) {
	client := startRedis(t)
	ctx := context.Background()

	t.Run("fill then hit", func(t *testing.T) {
		c := NewRedisRestaurantCache(client, time.Minute)
		v := builder.NewRestaurantBuilder().WithSlug("fill-then-hit").BuildView()

		cached, gen, err := c.Get(ctx, v.Slug)
		require.NoError(t, err)
		require.Nil(t, cached)

		require.NoError(t, c.Set(ctx, v, gen))

		cached, _, err = c.Get(ctx, v.Slug)
		require.NoError(t, err)
		require.NotNil(t, cached)
		assert.Equal(t, v.ID, cached.ID)

		ttl, err := client.PTTL(ctx, viewKey(v.Slug)).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
	})

	t.Run("fill after invalidation is dropped", func(t *testing.T) {
		c := NewRedisRestaurantCache(client, time.Minute)
		stale := builder.NewRestaurantBuilder().WithSlug("raced").WithName("Before").BuildView()

		_, gen, err := c.Get(ctx, stale.Slug)
		require.NoError(t, err)

		require.NoError(t, c.Invalidate(ctx, stale.Slug))
		require.NoError(t, c.Set(ctx, stale, gen))

		cached, next, err := c.Get(ctx, stale.Slug)
		require.NoError(t, err)
		assert.Nil(t, cached)
		assert.Equal(t, gen+1, next)

		fresh := builder.NewRestaurantBuilder().WithSlug("raced").WithName("After").BuildView()
		require.NoError(t, c.Set(ctx, fresh, next))
		cached, _, err = c.Get(ctx, fresh.Slug)
		require.NoError(t, err)
		require.NotNil(t, cached)
		assert.Equal(t, "After", cached.Name)
	})

	t.Run("invalidate drops the view", func(t *testing.T) {
		c := NewRedisRestaurantCache(client, 0)
		v := builder.NewRestaurantBuilder().WithSlug("dropped").BuildView()
		require.NoError(t, c.Set(ctx, v, 0))

		require.NoError(t, c.Invalidate(ctx, v.Slug))

		cached, _, err := c.Get(ctx, v.Slug)
		require.NoError(t, err)
		assert.Nil(t, cached)
	})
}
