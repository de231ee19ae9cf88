package bootstrap

import (
	"restro-ledger/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LocationModule,
	LoggerModule,
	LedgerModule,
	RedisModule,
	ObservabilityModule,
	components.UseCaseModule,
	components.HandlerModule,
)
