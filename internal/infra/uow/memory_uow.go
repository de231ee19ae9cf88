package uow

import (
	"context"
	"sync"

	"restro-ledger/internal/domain/ledger"
	"restro-ledger/internal/usecase/shared"
)

// MemoryUoW serialises access to a single in-process ledger.
type MemoryUoW struct {
	mu     sync.RWMutex
	ledger *ledger.Ledger
}

func NewMemoryUoW(l *ledger.Ledger) shared.UnitOfWork {
	return &MemoryUoW{ledger: l}
}

func (u *MemoryUoW) Within(ctx context.Context, fn func(ctx context.Context, l shared.LedgerWriter) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	return fn(ctx, u.ledger)
}

// Readers share the lock; a snapshot never observes a half-applied mutation
func (u *MemoryUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, l shared.LedgerReader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.mu.RLock()
	defer u.mu.RUnlock()

	return fn(ctx, u.ledger)
}
