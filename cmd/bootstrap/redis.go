package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"restro-ledger/internal/infra/idempotency"
	"restro-ledger/internal/pkg/config"
	"restro-ledger/internal/pkg/errs"
	"restro-ledger/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const redisPingTimeout = 2 * time.Second

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewIdempotencyStore,
	),
)

// NewIdempotencyStore falls back to a no-op store when REDIS_ADDR is unset.
func NewIdempotencyStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.IdempotencyStore {
	if !cfg.Redis.Enabled() {
		logger.Info("REDIS_ADDR not set, idempotent replay disabled")
		return idempotency.NopStore{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
			defer cancel()
			if err := client.Ping(pingCtx).Err(); err != nil {
				return errs.Wrapf(err, "failed to connect to redis at %s", cfg.Redis.Addr)
			}
			logger.Info("connected to redis", "addr", cfg.Redis.Addr)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return idempotency.NewRedisStore(client, logger)
}
