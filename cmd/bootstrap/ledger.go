package bootstrap

import (
	"log/slog"

	"restro-ledger/internal/domain/ledger"
	"restro-ledger/internal/infra/uow"
	"restro-ledger/internal/pkg/clock"
	"restro-ledger/internal/pkg/config"

	"go.uber.org/fx"
)

var LedgerModule = fx.Module("ledger",
	fx.Provide(
		clock.NewRealClock,
		NewLedger,
		uow.NewMemoryUoW,
	),
)

func NewLedger(cfg config.Config, clk clock.Clock, logger *slog.Logger) (*ledger.Ledger, error) {
	scope, err := ledger.ParseDuplicateScope(cfg.Ledger.DuplicateNameScope)
	if err != nil {
		return nil, err
	}

	l, err := ledger.New(cfg.Ledger.TotalSeats, scope, clk)
	if err != nil {
		return nil, err
	}

	logger.Info("ledger initialised",
		"total_seats", cfg.Ledger.TotalSeats,
		"duplicate_name_scope", string(scope))
	return l, nil
}
