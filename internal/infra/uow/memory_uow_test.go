//go:build unit

package uow_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"restro-ledger/internal/domain/ledger"
	"restro-ledger/internal/infra/uow"
	"restro-ledger/internal/pkg/clock"
	"restro-ledger/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUoW(t *testing.T) shared.UnitOfWork {
	t.Helper()
	l, err := ledger.New(ledger.DefaultTotalSeats, ledger.ScopeActive, clock.NewMockClock(time.Now()))
	require.NoError(t, err)
	return uow.NewMemoryUoW(l)
}

func TestMemoryUoW_ConcurrentReserve(t *testing.T) {
	u := newUoW(t)
	ctx := context.Background()

	var (
		wg       sync.WaitGroup
		accepted atomic.Int32
		rejected atomic.Int32
	)
	for i := range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := u.Within(ctx, func(_ context.Context, l shared.LedgerWriter) error {
				_, err := l.Reserve(fmt.Sprintf("guest-%d", i), "", 1)
				return err
			})
			switch {
			case err == nil:
				accepted.Add(1)
			case assert.ErrorIs(t, err, ledger.ErrCapacityExceeded):
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 50, accepted.Load())
	assert.EqualValues(t, 50, rejected.Load())

	err := u.WithinReadOnly(ctx, func(_ context.Context, l shared.LedgerReader) error {
		st := l.State()
		assert.Equal(t, 0, st.SeatsLeft)
		assert.Len(t, st.Reservations, 50)
		return nil
	})
	require.NoError(t, err)
}

func TestMemoryUoW_CancelledContext(t *testing.T) {
	u := newUoW(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := u.Within(ctx, func(context.Context, shared.LedgerWriter) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)

	err = u.WithinReadOnly(ctx, func(context.Context, shared.LedgerReader) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestMemoryUoW_PropagatesError(t *testing.T) {
	u := newUoW(t)

	err := u.Within(context.Background(), func(_ context.Context, l shared.LedgerWriter) error {
		_, err := l.Reserve("A", "1", 51)
		return err
	})
	assert.ErrorIs(t, err, ledger.ErrCapacityExceeded)
}
