//go:build unit

package config_test

import (
	"os"
	"testing"
	"time"

	"restro-ledger/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "8080")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Ledger.TotalSeats)
		assert.Equal(t, 10, cfg.Ledger.LowSeatsThreshold)
		assert.Equal(t, "active", cfg.Ledger.DuplicateNameScope)
		assert.Equal(t, 24*time.Hour, cfg.Redis.IdempotencyTTL)
		assert.False(t, cfg.Redis.Enabled())
		assert.Empty(t, cfg.Tracing.Endpoint)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("LEDGER_TOTAL_SEATS", "80")
		t.Setenv("LEDGER_DUPLICATE_NAME_SCOPE", "listed")
		t.Setenv("REDIS_ADDR", "localhost:6379")
		t.Setenv("IDEMPOTENCY_TTL", "1h")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 80, cfg.Ledger.TotalSeats)
		assert.Equal(t, "listed", cfg.Ledger.DuplicateNameScope)
		assert.True(t, cfg.Redis.Enabled())
		assert.Equal(t, time.Hour, cfg.Redis.IdempotencyTTL)
	})

	t.Run("missing port", func(t *testing.T) {
		t.Setenv("PORT", "")
		require.NoError(t, os.Unsetenv("PORT"))

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})

	t.Run("non-positive seat capacity", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("LEDGER_TOTAL_SEATS", "0")

		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "LEDGER_TOTAL_SEATS")
	})
}

func TestLedgerConfigLocation(t *testing.T) {
	loc, err := config.LedgerConfig{TimeZone: "Asia/Tokyo"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())

	_, err = config.LedgerConfig{TimeZone: "Nowhere/Special"}.Location()
	assert.Error(t, err)
}
