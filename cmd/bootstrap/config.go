package bootstrap

import (
	"time"

	"restro-ledger/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

// LocationModule resolves LEDGER_TIMEZONE once so a bad zone fails startup.
var LocationModule = fx.Module("location",
	fx.Provide(
		NewLedgerLocation,
	),
)

func NewLedgerLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Ledger.Location()
}
