package shared

import (
	"context"

	"restro-ledger/internal/domain/ledger"
	"restro-ledger/internal/domain/reservation"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: exclusive access for operations that mutate the ledger
	Within(ctx context.Context, fn func(ctx context.Context, l LedgerWriter) error) error
	// WithinReadOnly: shared access for consistent snapshots
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, l LedgerReader) error) error
}

type LedgerReader interface {
	State() ledger.State
	Find(id uuid.UUID) (*reservation.Reservation, error)
	SeatsLeft() int
}

type LedgerWriter interface {
	LedgerReader
	Reserve(name, phone string, guestCount int) (*reservation.Reservation, error)
	Checkout(id uuid.UUID) (*reservation.Reservation, error)
	Delete(id uuid.UUID) error
}
