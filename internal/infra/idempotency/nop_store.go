package idempotency

import (
	"context"
	"time"

	"restro-ledger/internal/pkg/errs"
	"restro-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

// NopStore is used when no Redis address is configured. Every key is accepted
// and nothing is remembered, so retries are not deduplicated.
type NopStore struct{}

func (NopStore) TryInsert(context.Context, uuid.UUID, string, time.Duration) (bool, error) {
	return true, nil
}

func (NopStore) Get(_ context.Context, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	return nil, errs.Wrapf(shared.ErrIdempotencyRecordNotFound, "key %s", key)
}

func (NopStore) Complete(context.Context, uuid.UUID, string, uuid.UUID, time.Duration) error {
	return nil
}

func (NopStore) Release(context.Context, uuid.UUID) error {
	return nil
}
