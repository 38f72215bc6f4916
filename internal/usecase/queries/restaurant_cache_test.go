//go:build unit

package queries_test

import (
	"context"
	"sync"
	"testing"

	"digital-menu/internal/pkg/clock"
	"digital-menu/internal/usecase/queries"
	"digital-menu/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// generationCache mirrors the Redis cache contract in memory.
type generationCache struct {
	mu    sync.Mutex
	views map[string]*queries.RestaurantView
	gens  map[string]int64
}

func newGenerationCache() *generationCache {
	return &generationCache{
		views: make(map[string]*queries.RestaurantView),
		gens:  make(map[string]int64),
	}
}

func (c *generationCache) Get(_ context.Context, slug string) (*queries.RestaurantView, int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.views[slug]; ok {
		return v, 0, nil
	}
	return nil, c.gens[slug], nil
}

func (c *generationCache) Set(_ context.Context, v *queries.RestaurantView, gen int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[v.Slug] == gen {
		c.views[v.Slug] = v
	}
	return nil
}

func (c *generationCache) Invalidate(_ context.Context, slug string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[slug]++
	delete(c.views, slug)
	return nil
}

// parkedReadStore returns the aggregate as of the start of the read; the
// first read waits for release before answering.
type parkedReadStore struct {
	mu      sync.Mutex
	view    *queries.RestaurantView
	parked  bool
	entered chan struct{}
	release chan struct{}
}

func (s *parkedReadStore) FindBySlug(_ context.Context, _ string) (*queries.RestaurantView, error) {
	s.mu.Lock()
	v := s.view
	park := !s.parked
	s.parked = true
	s.mu.Unlock()

	if park {
		close(s.entered)
		<-s.release
	}
	return v, nil
}

func (s *parkedReadStore) FindByOwner(context.Context, uuid.UUID) (*queries.RestaurantView, error) {
	return nil, nil
}

func (s *parkedReadStore) replace(v *queries.RestaurantView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = v
}

func TestGetBySlug_InvalidationDuringReadDoesNotLeaveStaleFill(t *testing.T) {
	ctx := context.Background()
	before := builder.NewRestaurantBuilder().WithSlug("bella-vista").WithName("Before").BuildView()
	after := builder.NewRestaurantBuilder().WithSlug("bella-vista").WithName("After").BuildView()
	after.ID = before.ID

	store := &parkedReadStore{view: before, entered: make(chan struct{}), release: make(chan struct{})}
	cache := newGenerationCache()
	q := queries.NewRestaurantQueries(store, cache, clock.NewMockClock(mondayNoon))

	slow := make(chan *queries.RestaurantView, 1)
	go func() {
		v, err := q.GetBySlug(ctx, "bella-vista")
		assert.NoError(t, err)
		slow <- v
	}()
	<-store.entered

	// an owner mutation commits and the bus invalidates while the read is parked
	store.replace(after)
	require.NoError(t, cache.Invalidate(ctx, "bella-vista"))

	close(store.release)
	assert.Equal(t, "Before", (<-slow).Name)

	got, err := q.GetBySlug(ctx, "bella-vista")
	require.NoError(t, err)
	assert.Equal(t, "After", got.Name)

	cached, _, err := cache.Get(ctx, "bella-vista")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, "After", cached.Name)
}
