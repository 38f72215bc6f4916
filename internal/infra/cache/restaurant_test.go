//go:build unit

package cache

import (
	"context"
	"testing"

	"digital-menu/internal/pkg/eventbus"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingInvalidator struct {
	slugs []string
}

func (r *recordingInvalidator) Invalidate(_ context.Context, slug string) error {
	r.slugs = append(r.slugs, slug)
	return nil
}

func TestSubscribeInvalidation(t *testing.T) {
	bus := eventbus.New()
	inv := &recordingInvalidator{}

	unsubscribe := SubscribeInvalidation(bus, inv)

	ctx := context.Background()
	bus.Publish(ctx, eventbus.Event{Topic: eventbus.TopicOffersUpdated, RestaurantID: uuid.New(), Slug: "bella-vista"})
	bus.Publish(ctx, eventbus.Event{Topic: eventbus.TopicMenuUpdated, RestaurantID: uuid.New(), Slug: "trattoria"})
	bus.Publish(ctx, eventbus.Event{Topic: eventbus.TopicRestaurantUpdated, RestaurantID: uuid.New()})

	assert.Equal(t, []string{"bella-vista", "trattoria"}, inv.slugs)

	unsubscribe()
	bus.Publish(ctx, eventbus.Event{Topic: eventbus.TopicOffersUpdated, Slug: "bella-vista"})
	assert.Len(t, inv.slugs, 2)
	for _, topic := range eventbus.AllTopics() {
		assert.Zero(t, bus.SubscriberCount(topic))
	}
}

func TestNopRestaurantCache(t *testing.T) {
	var c NopRestaurantCache
	v, gen, err := c.Get(context.Background(), "bella-vista")
	require.NoError(t, err)
	assert.Nil(t, v)
	assert.Zero(t, gen)
	assert.NoError(t, c.Invalidate(context.Background(), "bella-vista"))
}

func TestKeysShareHashSlot(t *testing.T) {
	assert.Equal(t, "restaurant:{bella-vista}:view", viewKey("bella-vista"))
	assert.Equal(t, "restaurant:{bella-vista}:gen", genKey("bella-vista"))
}

func TestParseGeneration(t *testing.T) {
	gen, err := parseGeneration(nil)
	require.NoError(t, err)
	assert.Zero(t, gen)

	gen, err = parseGeneration("12")
	require.NoError(t, err)
	assert.Equal(t, int64(12), gen)

	_, err = parseGeneration("twelve")
	assert.Error(t, err)
}
