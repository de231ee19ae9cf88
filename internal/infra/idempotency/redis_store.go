package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"restro-ledger/internal/infra"
	"restro-ledger/internal/pkg/errs"
	"restro-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "idempotency:reserve:"

type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisStore(client *redis.Client, logger *slog.Logger) *RedisStore {
	return &RedisStore{client: client, logger: logger}
}

func (s *RedisStore) key(k uuid.UUID) string {
	return keyPrefix + k.String()
}

func (s *RedisStore) TryInsert(ctx context.Context, key uuid.UUID, requestHash string, ttl time.Duration) (bool, error) {
	raw, err := json.Marshal(shared.IdempotencyRecord{
		Key:         key,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: requestHash,
	})
	if err != nil {
		return false, errs.Wrap(err, "failed to encode idempotency record")
	}

	inserted, err := s.client.SetNX(ctx, s.key(key), raw, ttl).Result()
	if err != nil {
		return false, infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to claim idempotency key", err)
	}
	return inserted, nil
}

func (s *RedisStore) Get(ctx context.Context, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errs.Wrapf(shared.ErrIdempotencyRecordNotFound, "key %s", key)
	}
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to read idempotency key", err)
	}

	var record shared.IdempotencyRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindCorruptPayload, "failed to decode idempotency record", err)
	}
	return &record, nil
}

func (s *RedisStore) Complete(ctx context.Context, key uuid.UUID, requestHash string, reservationID uuid.UUID, ttl time.Duration) error {
	raw, err := json.Marshal(shared.IdempotencyRecord{
		Key:                 key,
		Status:              shared.IdempotencyStatusCompleted,
		RequestHash:         requestHash,
		ResultReservationID: &reservationID,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode idempotency record")
	}

	if err := s.client.Set(ctx, s.key(key), raw, ttl).Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to complete idempotency key", err)
	}
	return nil
}

func (s *RedisStore) Release(ctx context.Context, key uuid.UUID) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "failed to release idempotency key", err)
	}
	return nil
}
