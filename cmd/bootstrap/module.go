package bootstrap

import (
	"barberflow/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	JWTModule,
	UpstreamModule,
	SessionModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
