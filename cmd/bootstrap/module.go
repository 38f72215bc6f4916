package bootstrap

import (
	"digital-menu/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	RedisModule,
	EventBusModule,
	KafkaModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
