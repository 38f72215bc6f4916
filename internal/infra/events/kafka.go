package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"digital-menu/internal/pkg/config"
	"digital-menu/internal/pkg/errs"
	"digital-menu/internal/pkg/eventbus"
	"digital-menu/internal/pkg/metrics"

	"github.com/segmentio/kafka-go"
)

const writeTimeout = 5 * time.Second

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func NewKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		Async:                  true,
		AllowAutoTopicCreation: true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				slog.Warn("kafka delivery failed", "messages", len(messages), "error", err.Error())
			}
		},
	}
}

// Forwarder copies bus events onto a Kafka topic, keyed by restaurant so that
// the changes of one restaurant stay ordered within a partition.
type Forwarder struct {
	writer MessageWriter
}

func NewForwarder(writer MessageWriter) *Forwarder {
	return &Forwarder{writer: writer}
}

func (f *Forwarder) Forward(ctx context.Context, ev eventbus.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "failed to encode event")
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(ev.RestaurantID.String()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "topic", Value: []byte(ev.Topic)},
		},
		Time: ev.OccurredAt,
	}
	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrapf(err, "failed to forward %s event", ev.Topic)
	}
	metrics.EventsPublished.WithLabelValues(string(ev.Topic), "kafka").Inc()
	return nil
}

func (f *Forwarder) Subscribe(bus eventbus.Subscriber) eventbus.Unsubscribe {
	return eventbus.SubscribeAll(bus, func(ctx context.Context, ev eventbus.Event) {
		if err := f.Forward(ctx, ev); err != nil {
			slog.Warn("event forwarding failed",
				"topic", string(ev.Topic),
				"restaurant_id", ev.RestaurantID.String(),
				"error", err.Error())
		}
	})
}

func (f *Forwarder) Close() error {
	return f.writer.Close()
}
