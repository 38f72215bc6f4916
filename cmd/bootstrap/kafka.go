package bootstrap

import (
	"context"
	"log/slog"

	"digital-menu/internal/infra/events"
	"digital-menu/internal/pkg/config"
	"digital-menu/internal/pkg/eventbus"

	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Invoke(startForwarder),
)

// startForwarder mirrors bus events to Kafka when KAFKA_BROKERS is set.
func startForwarder(lc fx.Lifecycle, cfg config.Config, bus *eventbus.Bus) {
	if !cfg.Kafka.Enabled() {
		slog.Info("kafka disabled, change events stay in process")
		return
	}

	forwarder := events.NewForwarder(events.NewKafkaWriter(cfg.Kafka))
	var unsubscribe eventbus.Unsubscribe

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			unsubscribe = forwarder.Subscribe(bus)
			slog.Info("kafka forwarder started", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
			return nil
		},
		OnStop: func(_ context.Context) error {
			if unsubscribe != nil {
				unsubscribe()
			}
			return forwarder.Close()
		},
	})
}
