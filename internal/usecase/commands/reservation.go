package commands

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"

	"restro-ledger/internal/domain/ledger"
	"restro-ledger/internal/domain/reservation"
	"restro-ledger/internal/pkg/config"
	"restro-ledger/internal/pkg/errs"
	"restro-ledger/internal/usecase/queries"
	"restro-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCapacityExceeded    = ledger.ErrCapacityExceeded
	ErrDuplicateName       = ledger.ErrDuplicateName
	ErrReservationNotFound = ledger.ErrReservationNotFound

	ErrInvalidReservation     = errs.New("invalid reservation")
	ErrIdempotencyInProgress  = errs.New("idempotency in progress")
	ErrIdempotencyKeyReused   = errs.New("idempotency key reused with a different request")
	ErrIdempotencyCheckFailed = errs.New("idempotency check failed")
	ErrIdempotentResultGone   = errs.New("reservation created for this idempotency key no longer exists")

	ErrInvalidName       = reservation.ErrInvalidName
	ErrInvalidPhone      = reservation.ErrInvalidPhone
	ErrInvalidGuestCount = reservation.ErrInvalidGuestCount
)

type ReserveRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	GuestCount string `json:"guest_count"`
}

type ReserveResult struct {
	Reservation *queries.ReservationView
	IsReplayed  bool
}

type LedgerCommands interface {
	Reserve(ctx context.Context, req ReserveRequest, idempotencyKey *uuid.UUID) (*ReserveResult, error)
	Checkout(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ledgerCommandsImpl struct {
	uow         shared.UnitOfWork
	idempotency shared.IdempotencyStore
	recorder    shared.LedgerRecorder
	queries     queries.LedgerQueries
	cfg         config.Config
}

func NewLedgerCommands(
	uow shared.UnitOfWork,
	idempotency shared.IdempotencyStore,
	recorder shared.LedgerRecorder,
	queries queries.LedgerQueries,
	cfg config.Config,
) LedgerCommands {
	return &ledgerCommandsImpl{
		uow:         uow,
		idempotency: idempotency,
		recorder:    recorder,
		queries:     queries,
		cfg:         cfg,
	}
}

func (c *ledgerCommandsImpl) Reserve(
	ctx context.Context,
	req ReserveRequest,
	idempotencyKey *uuid.UUID,
) (*ReserveResult, error) {
	if idempotencyKey == nil {
		view, err := c.reserve(ctx, req)
		if err != nil {
			return nil, err
		}
		return &ReserveResult{Reservation: view}, nil
	}

	requestHash := c.calculateRequestHash(req)

	existing, err := c.handleIdempotency(ctx, *idempotencyKey, requestHash)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &ReserveResult{
			Reservation: existing,
			IsReplayed:  true,
		}, nil
	}

	view, err := c.reserve(ctx, req)
	if err != nil {
		// Release so a corrected retry with the same key is not stuck in processing
		if releaseErr := c.idempotency.Release(ctx, *idempotencyKey); releaseErr != nil {
			slog.Warn("failed to release idempotency key",
				"key", idempotencyKey.String(),
				"error", releaseErr)
		}
		return nil, err
	}

	ttl := c.cfg.Redis.IdempotencyTTL
	if err := c.idempotency.Complete(ctx, *idempotencyKey, requestHash, view.ID, ttl); err != nil {
		// The reservation exists; a lost completion only weakens replay for this key
		slog.Warn("failed to complete idempotency key",
			"key", idempotencyKey.String(),
			"reservation_id", view.ID.String(),
			"error", err)
	}

	return &ReserveResult{Reservation: view}, nil
}

// handleIdempotency returns the stored result for a completed key, or nil when
// the caller now owns the key and should perform the reservation.
func (c *ledgerCommandsImpl) handleIdempotency(
	ctx context.Context,
	key uuid.UUID,
	requestHash string,
) (*queries.ReservationView, error) {
	inserted, err := c.idempotency.TryInsert(ctx, key, requestHash, c.cfg.Redis.IdempotencyTTL)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := c.idempotency.Get(ctx, key)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	if existing.RequestHash != requestHash {
		return nil, ErrIdempotencyKeyReused
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultReservationID == nil {
			return nil, errs.Mark(errs.New("completed request missing result reservation ID"), ErrIdempotencyCheckFailed)
		}
		view, err := c.queries.GetByID(ctx, *existing.ResultReservationID)
		if errs.Is(err, queries.ErrReservationNotFound) {
			// Deleted since the first request; a fresh booking would not be a replay.
			return nil, errs.Wrapf(ErrIdempotentResultGone, "reservation %s", *existing.ResultReservationID)
		}
		return view, err

	case shared.IdempotencyStatusProcessing:
		return nil, ErrIdempotencyInProgress

	default:
		return nil, errs.Mark(errs.Newf("invalid idempotency key status %q", existing.Status), ErrIdempotencyCheckFailed)
	}
}

func (c *ledgerCommandsImpl) reserve(ctx context.Context, req ReserveRequest) (*queries.ReservationView, error) {
	count, err := reservation.ParseGuestCount(req.GuestCount)
	if err != nil {
		c.recorder.ReservationRejected(shared.RejectReasonInvalid)
		return nil, errs.Mark(err, ErrInvalidReservation)
	}

	var view *queries.ReservationView
	err = c.uow.Within(ctx, func(_ context.Context, l shared.LedgerWriter) error {
		res, err := l.Reserve(req.Name, req.Phone, count.Int())
		if err != nil {
			return err
		}
		view = queries.NewReservationView(res)
		c.recorder.SeatsLeft(l.SeatsLeft())
		return nil
	})
	if err != nil {
		switch {
		case errs.Is(err, ErrCapacityExceeded):
			c.recorder.ReservationRejected(shared.RejectReasonCapacity)
			return nil, err
		case errs.Is(err, ErrDuplicateName):
			c.recorder.ReservationRejected(shared.RejectReasonDuplicate)
			return nil, err
		case errs.IsAny(err, reservation.ErrInvalidName, reservation.ErrInvalidPhone, reservation.ErrInvalidGuestCount):
			c.recorder.ReservationRejected(shared.RejectReasonInvalid)
			return nil, errs.Mark(err, ErrInvalidReservation)
		default:
			return nil, err
		}
	}

	c.recorder.ReservationCreated(view.GuestCount)
	return view, nil
}

func (c *ledgerCommandsImpl) Checkout(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var (
		view     *queries.ReservationView
		released bool
	)
	err := c.uow.Within(ctx, func(_ context.Context, l shared.LedgerWriter) error {
		before, err := l.Find(id)
		if err != nil {
			return err
		}
		res, err := l.Checkout(id)
		if err != nil {
			return err
		}
		released = before.IsActive()
		view = queries.NewReservationView(res)
		c.recorder.SeatsLeft(l.SeatsLeft())
		return nil
	})
	if err != nil {
		return nil, err
	}

	if released {
		c.recorder.ReservationCheckedOut(view.GuestCount)
	}
	return view, nil
}

func (c *ledgerCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	var releasedSeats int
	err := c.uow.Within(ctx, func(_ context.Context, l shared.LedgerWriter) error {
		before, err := l.Find(id)
		if err != nil {
			return err
		}
		if err := l.Delete(id); err != nil {
			return err
		}
		if before.IsActive() {
			releasedSeats = before.GuestCount().Int()
		}
		c.recorder.SeatsLeft(l.SeatsLeft())
		return nil
	})
	if err != nil {
		return err
	}

	c.recorder.ReservationDeleted(releasedSeats)
	return nil
}

func (c *ledgerCommandsImpl) calculateRequestHash(req ReserveRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
