package eventbus

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Topic string

const (
	TopicRestaurantUpdated Topic = "restaurant-updated"
	TopicMenuUpdated       Topic = "menu-updated"
	TopicOffersUpdated     Topic = "offers-updated"
)

func AllTopics() []Topic {
	return []Topic{TopicRestaurantUpdated, TopicMenuUpdated, TopicOffersUpdated}
}

type Event struct {
	Topic        Topic     `json:"topic"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Slug         string    `json:"slug"`
	OccurredAt   time.Time `json:"occurred_at"`
	// Origin identifies the publisher so it can recognise its own events.
	Origin string `json:"origin,omitempty"`
}

type Handler func(ctx context.Context, ev Event)

// Unsubscribe removes the subscription. Calling it more than once is harmless.
type Unsubscribe func()

type Publisher interface {
	Publish(ctx context.Context, ev Event)
}

type Subscriber interface {
	Subscribe(topic Topic, h Handler) Unsubscribe
}

// Bus delivers events synchronously, in subscription order.
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[Topic][]subscription
}

type subscription struct {
	id uint64
	h  Handler
}

func New() *Bus {
	return &Bus{subs: make(map[Topic][]subscription)}
}

func (b *Bus) Subscribe(topic Topic, h Handler) Unsubscribe {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[topic] = append(b.subs[topic], subscription{id: id, h: h})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(topic, id) })
	}
}

// SubscribeAll registers h on every topic and returns one handle for all of them.
func SubscribeAll(sub Subscriber, h Handler) Unsubscribe {
	topics := AllTopics()
	unsubs := make([]Unsubscribe, 0, len(topics))
	for _, t := range topics {
		unsubs = append(unsubs, sub.Subscribe(t, h))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

func (b *Bus) Publish(ctx context.Context, ev Event) {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now()
	}

	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[ev.Topic]))
	for _, s := range b.subs[ev.Topic] {
		handlers = append(handlers, s.h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		b.dispatch(ctx, ev, h)
	}
}

// SubscriberCount reports the live subscriptions on topic.
func (b *Bus) SubscriberCount(topic Topic) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[topic])
}

func (b *Bus) dispatch(ctx context.Context, ev Event, h Handler) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("event handler panicked", "topic", string(ev.Topic), "panic", r)
		}
	}()
	h(ctx, ev)
}

func (b *Bus) remove(topic Topic, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.subs[topic]
	for i, s := range subs {
		if s.id == id {
			b.subs[topic] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.subs[topic]) == 0 {
		delete(b.subs, topic)
	}
}
