package shared

//go:generate mockgen -source=idempotency.go -destination=../../../tests/mock/shared/idempotency.go -package=sharedmock

import (
	"context"
	"time"

	"restro-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

var ErrIdempotencyRecordNotFound = errs.New("idempotency record not found")

type IdempotencyRecord struct {
	Key                 uuid.UUID  `json:"key"`
	Status              string     `json:"status"`
	RequestHash         string     `json:"request_hash"`
	ResultReservationID *uuid.UUID `json:"result_reservation_id,omitempty"`
}

type IdempotencyStore interface {
	// TryInsert claims the key in processing state. It returns false when the key already exists.
	TryInsert(ctx context.Context, key uuid.UUID, requestHash string, ttl time.Duration) (bool, error)
	Get(ctx context.Context, key uuid.UUID) (*IdempotencyRecord, error)
	Complete(ctx context.Context, key uuid.UUID, requestHash string, reservationID uuid.UUID, ttl time.Duration) error
	// Release drops a processing claim so the client can retry with the same key.
	Release(ctx context.Context, key uuid.UUID) error
}
