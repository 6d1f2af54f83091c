package bootstrap

import (
	"smartbox-gateway/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	AMQPModule,
	JWTModule,
	components.ClientModule,
	components.UseCaseModule,
	components.HandlerModule,
)
