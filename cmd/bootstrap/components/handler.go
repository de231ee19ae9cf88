package components

import (
	"time"

	"restro-ledger/internal/handler"
	"restro-ledger/internal/handler/api"
	"restro-ledger/internal/infra/export"
	"restro-ledger/internal/pkg/config"
	"restro-ledger/internal/usecase/commands"
	"restro-ledger/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		fx.Annotate(
			NewExporter,
			fx.As(new(api.LedgerExporter)),
		),
		NewLedgerHandler,
	),
	fx.Invoke(handler.NewRouter),
)

func NewExporter(loc *time.Location) *export.XLSXExporter {
	return export.NewXLSXExporter(loc)
}

func NewLedgerHandler(
	cmds commands.LedgerCommands,
	q queries.LedgerQueries,
	exporter api.LedgerExporter,
	cfg config.Config,
) *api.LedgerHandler {
	return api.NewLedgerHandler(cmds, q, exporter, cfg.Ledger.LowSeatsThreshold)
}
