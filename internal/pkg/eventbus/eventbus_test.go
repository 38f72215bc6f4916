//go:build unit

package eventbus_test

import (
	"context"
	"testing"

	"digital-menu/internal/pkg/eventbus"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus(t *testing.T) {
	ctx := context.Background()
	restaurantID := uuid.New()

	t.Run("delivers only to subscribers of the topic", func(t *testing.T) {
		bus := eventbus.New()
		var offers, menu int
		defer bus.Subscribe(eventbus.TopicOffersUpdated, func(context.Context, eventbus.Event) { offers++ })()
		defer bus.Subscribe(eventbus.TopicMenuUpdated, func(context.Context, eventbus.Event) { menu++ })()

		bus.Publish(ctx, eventbus.Event{Topic: eventbus.TopicOffersUpdated, RestaurantID: restaurantID})

		assert.Equal(t, 1, offers)
		assert.Equal(t, 0, menu)
	})

	t.Run("unsubscribe stops delivery and is idempotent", func(t *testing.T) {
		bus := eventbus.New()
		var first, second int
		unsubFirst := bus.Subscribe(eventbus.TopicOffersUpdated, func(context.Context, eventbus.Event) { first++ })
		unsubSecond := bus.Subscribe(eventbus.TopicOffersUpdated, func(context.Context, eventbus.Event) { second++ })

		unsubFirst()
		unsubFirst()
		bus.Publish(ctx, eventbus.Event{Topic: eventbus.TopicOffersUpdated})

		assert.Equal(t, 0, first)
		assert.Equal(t, 1, second)
		assert.Equal(t, 1, bus.SubscriberCount(eventbus.TopicOffersUpdated))

		unsubSecond()
		assert.Equal(t, 0, bus.SubscriberCount(eventbus.TopicOffersUpdated))
	})

	t.Run("handlers run in subscription order with the published payload", func(t *testing.T) {
		bus := eventbus.New()
		var order []int
		var got eventbus.Event
		defer bus.Subscribe(eventbus.TopicRestaurantUpdated, func(_ context.Context, ev eventbus.Event) {
			order = append(order, 1)
			got = ev
		})()
		defer bus.Subscribe(eventbus.TopicRestaurantUpdated, func(context.Context, eventbus.Event) { order = append(order, 2) })()

		bus.Publish(ctx, eventbus.Event{Topic: eventbus.TopicRestaurantUpdated, RestaurantID: restaurantID, Slug: "bella-vista"})

		assert.Equal(t, []int{1, 2}, order)
		assert.Equal(t, "bella-vista", got.Slug)
		assert.False(t, got.OccurredAt.IsZero())
	})

	t.Run("a panicking handler does not stop later handlers", func(t *testing.T) {
		bus := eventbus.New()
		reached := false
		defer bus.Subscribe(eventbus.TopicMenuUpdated, func(context.Context, eventbus.Event) { panic("boom") })()
		defer bus.Subscribe(eventbus.TopicMenuUpdated, func(context.Context, eventbus.Event) { reached = true })()

		require.NotPanics(t, func() {
			bus.Publish(ctx, eventbus.Event{Topic: eventbus.TopicMenuUpdated})
		})
		assert.True(t, reached)
	})

	t.Run("SubscribeAll covers every topic with one handle", func(t *testing.T) {
		bus := eventbus.New()
		count := 0
		unsub := eventbus.SubscribeAll(bus, func(context.Context, eventbus.Event) { count++ })

		for _, topic := range eventbus.AllTopics() {
			bus.Publish(ctx, eventbus.Event{Topic: topic})
		}
		unsub()
		bus.Publish(ctx, eventbus.Event{Topic: eventbus.TopicOffersUpdated})

		assert.Equal(t, 3, count)
		for _, topic := range eventbus.AllTopics() {
			assert.Zero(t, bus.SubscriberCount(topic))
		}
	})
}
