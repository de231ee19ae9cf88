package bootstrap

import (
	"context"
	"log/slog"

	"restro-ledger/internal/infra/metrics"
	"restro-ledger/internal/infra/tracing"
	"restro-ledger/internal/pkg/config"
	"restro-ledger/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var ObservabilityModule = fx.Module("observability",
	fx.Provide(
		NewRegistry,
		fx.Annotate(
			NewMetrics,
			fx.As(fx.Self()),
			fx.As(new(shared.LedgerRecorder)),
		),
	),
	fx.Invoke(
		RegisterTracing,
		SeedSeatsLeft,
	),
)

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func NewMetrics(reg *prometheus.Registry) *metrics.Metrics {
	return metrics.New(reg)
}

// SeedSeatsLeft publishes the starting capacity so the gauge is correct
// before the first mutation.
func SeedSeatsLeft(u shared.UnitOfWork, recorder shared.LedgerRecorder) error {
	return u.WithinReadOnly(context.Background(), func(_ context.Context, l shared.LedgerReader) error {
		recorder.SeatsLeft(l.SeatsLeft())
		return nil
	})
}

func RegisterTracing(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) {
	var shutdown func(context.Context) error

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var err error
			shutdown, err = tracing.Init(ctx, cfg.Tracing)
			if err != nil {
				return err
			}
			if shutdown != nil {
				logger.Info("tracing enabled", "endpoint", cfg.Tracing.Endpoint, "service", cfg.Tracing.ServiceName)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if shutdown == nil {
				return nil
			}
			return shutdown(ctx)
		},
	})
}
