//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"restro-ledger/internal/domain/ledger"
	"restro-ledger/internal/infra/uow"
	"restro-ledger/internal/pkg/clock"
	"restro-ledger/internal/pkg/config"
	"restro-ledger/internal/pkg/errs"
	"restro-ledger/internal/usecase/commands"
	"restro-ledger/internal/usecase/queries"
	"restro-ledger/internal/usecase/shared"
	"restro-ledger/tests/common/builder"
	sharedmock "restro-ledger/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LedgerCommandsTestSuite struct {
	suite.Suite
	ctx          context.Context
	clock        *clock.MockClock
	mockCtrl     *gomock.Controller
	mockStore    *sharedmock.MockIdempotencyStore
	mockRecorder *sharedmock.MockLedgerRecorder
	queries      queries.LedgerQueries
	cmds         commands.LedgerCommands
}

func TestLedgerCommandsSuite(t *testing.T) {
	suite.Run(t, new(LedgerCommandsTestSuite))
}

func (s *LedgerCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(time.Date(2026, 10, 16, 18, 0, 0, 0, time.UTC))

	l, err := ledger.New(ledger.DefaultTotalSeats, ledger.ScopeActive, s.clock)
	s.Require().NoError(err)
	u := uow.NewMemoryUoW(l)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = sharedmock.NewMockIdempotencyStore(s.mockCtrl)
	s.mockRecorder = sharedmock.NewMockLedgerRecorder(s.mockCtrl)
	s.queries = queries.NewLedgerQueries(u)
	s.cmds = commands.NewLedgerCommands(u, s.mockStore, s.mockRecorder, s.queries, config.NewTestConfig())
}

func (s *LedgerCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// reserveDirect books a party without an idempotency key.
func (s *LedgerCommandsTestSuite) reserveDirect(name string, guests int) *queries.ReservationView {
	s.T().Helper()
	s.mockRecorder.EXPECT().SeatsLeft(gomock.Any())
	s.mockRecorder.EXPECT().ReservationCreated(guests)

	req := builder.NewReservationBuilder().WithName(name).WithGuestCount(guests).BuildReserveCommand()
	result, err := s.cmds.Reserve(s.ctx, req, nil)
	s.Require().NoError(err)
	return result.Reservation
}

func (s *LedgerCommandsTestSuite) seatsLeft() int {
	view, err := s.queries.State(s.ctx)
	s.Require().NoError(err)
	return view.SeatsLeft
}

// ================================================================================
// Reserve without Idempotency-Key
// ================================================================================

func (s *LedgerCommandsTestSuite) TestReserve() {
	s.Run("success", func() {
		s.mockRecorder.EXPECT().SeatsLeft(46)
		s.mockRecorder.EXPECT().ReservationCreated(4)

		req := builder.NewReservationBuilder().BuildReserveCommand()
		result, err := s.cmds.Reserve(s.ctx, req, nil)
		s.Require().NoError(err)
		s.False(result.IsReplayed)
		s.Equal("Alice", result.Reservation.Name)
		s.Equal(4, result.Reservation.GuestCount)
		s.Equal(s.clock.Now(), result.Reservation.CheckInTime)
		s.Equal(46, s.seatsLeft())
	})

	s.Run("capacity exceeded", func() {
		s.mockRecorder.EXPECT().ReservationRejected(shared.RejectReasonCapacity)

		req := builder.NewReservationBuilder().WithName("Crowd").WithGuestCount(47).BuildReserveCommand()
		_, err := s.cmds.Reserve(s.ctx, req, nil)
		s.True(errs.Is(err, commands.ErrCapacityExceeded))
		s.Equal(46, s.seatsLeft())
	})

	s.Run("duplicate name", func() {
		s.mockRecorder.EXPECT().ReservationRejected(shared.RejectReasonDuplicate)

		req := builder.NewReservationBuilder().WithGuestCount(1).BuildReserveCommand()
		_, err := s.cmds.Reserve(s.ctx, req, nil)
		s.True(errs.Is(err, commands.ErrDuplicateName))
		s.Equal(46, s.seatsLeft())
	})

	s.Run("invalid input", func() {
		cases := []struct {
			name string
			req  commands.ReserveRequest
		}{
			{name: "empty name", req: commands.ReserveRequest{Name: " ", Phone: "1", GuestCount: "2"}},
			{name: "non numeric guests", req: commands.ReserveRequest{Name: "Zed", Phone: "1", GuestCount: "two"}},
			{name: "trailing text", req: commands.ReserveRequest{Name: "Zed", Phone: "1", GuestCount: "2 people"}},
			{name: "zero guests", req: commands.ReserveRequest{Name: "Zed", Phone: "1", GuestCount: "0"}},
			{name: "negative guests", req: commands.ReserveRequest{Name: "Zed", Phone: "1", GuestCount: "-3"}},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockRecorder.EXPECT().ReservationRejected(shared.RejectReasonInvalid)

				_, err := s.cmds.Reserve(s.ctx, tc.req, nil)
				s.True(errs.Is(err, commands.ErrInvalidReservation), "got %v", err)
				s.Equal(46, s.seatsLeft())
			})
		}
	})

	s.Run("cancelled context", func() {
		ctx, cancel := context.WithCancel(s.ctx)
		cancel()

		req := builder.NewReservationBuilder().WithName("Late").BuildReserveCommand()
		_, err := s.cmds.Reserve(ctx, req, nil)
		s.ErrorIs(err, context.Canceled)
	})
}

// ================================================================================
// Reserve with Idempotency-Key
// ================================================================================

func (s *LedgerCommandsTestSuite) TestReserveIdempotent() {
	req := builder.NewReservationBuilder().BuildReserveCommand()

	s.Run("first request completes the key", func() {
		key := uuid.New()

		s.mockStore.EXPECT().TryInsert(gomock.Any(), key, gomock.Any(), 24*time.Hour).Return(true, nil)
		s.mockRecorder.EXPECT().SeatsLeft(46)
		s.mockRecorder.EXPECT().ReservationCreated(4)
		s.mockStore.EXPECT().Complete(gomock.Any(), key, gomock.Any(), gomock.Any(), 24*time.Hour).Return(nil)

		result, err := s.cmds.Reserve(s.ctx, req, &key)
		s.Require().NoError(err)
		s.False(result.IsReplayed)
	})

	s.Run("completed key replays the stored reservation", func() {
		key := uuid.New()
		stored := s.reserveDirect("Bob", 2)

		var hash string
		s.mockStore.EXPECT().TryInsert(gomock.Any(), key, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, h string, _ time.Duration) (bool, error) {
				hash = h
				return false, nil
			})
		s.mockStore.EXPECT().Get(gomock.Any(), key).
			DoAndReturn(func(context.Context, uuid.UUID) (*shared.IdempotencyRecord, error) {
				return &shared.IdempotencyRecord{
					Key:                 key,
					Status:              shared.IdempotencyStatusCompleted,
					RequestHash:         hash,
					ResultReservationID: &stored.ID,
				}, nil
			})

		before := s.seatsLeft()
		result, err := s.cmds.Reserve(s.ctx, builder.NewReservationBuilder().WithName("Bob").WithGuestCount(2).BuildReserveCommand(), &key)
		s.Require().NoError(err)
		s.True(result.IsReplayed)
		s.Equal(stored.ID, result.Reservation.ID)
		s.Equal(before, s.seatsLeft(), "replay must not book seats again")
	})

	s.Run("completed key whose reservation was deleted", func() {
		key := uuid.New()
		deletedID := uuid.New()

		var hash string
		s.mockStore.EXPECT().TryInsert(gomock.Any(), key, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, h string, _ time.Duration) (bool, error) {
				hash = h
				return false, nil
			})
		s.mockStore.EXPECT().Get(gomock.Any(), key).
			DoAndReturn(func(context.Context, uuid.UUID) (*shared.IdempotencyRecord, error) {
				return &shared.IdempotencyRecord{
					Key:                 key,
					Status:              shared.IdempotencyStatusCompleted,
					RequestHash:         hash,
					ResultReservationID: &deletedID,
				}, nil
			})

		before := s.seatsLeft()
		_, err := s.cmds.Reserve(s.ctx, req, &key)
		s.True(errs.Is(err, commands.ErrIdempotentResultGone))
		s.False(errs.Is(err, commands.ErrReservationNotFound), "must not surface as a missing reservation")
		s.Equal(before, s.seatsLeft())
	})

	s.Run("key reused with a different request", func() {
		key := uuid.New()

		s.mockStore.EXPECT().TryInsert(gomock.Any(), key, gomock.Any(), gomock.Any()).Return(false, nil)
		s.mockStore.EXPECT().Get(gomock.Any(), key).Return(&shared.IdempotencyRecord{
			Key:         key,
			Status:      shared.IdempotencyStatusCompleted,
			RequestHash: "some-other-hash",
		}, nil)

		_, err := s.cmds.Reserve(s.ctx, req, &key)
		s.ErrorIs(err, commands.ErrIdempotencyKeyReused)
	})

	s.Run("key still processing", func() {
		key := uuid.New()

		var hash string
		s.mockStore.EXPECT().TryInsert(gomock.Any(), key, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, h string, _ time.Duration) (bool, error) {
				hash = h
				return false, nil
			})
		s.mockStore.EXPECT().Get(gomock.Any(), key).
			DoAndReturn(func(context.Context, uuid.UUID) (*shared.IdempotencyRecord, error) {
				return &shared.IdempotencyRecord{Key: key, Status: shared.IdempotencyStatusProcessing, RequestHash: hash}, nil
			})

		_, err := s.cmds.Reserve(s.ctx, req, &key)
		s.ErrorIs(err, commands.ErrIdempotencyInProgress)
	})

	s.Run("failed reservation releases the key", func() {
		key := uuid.New()
		overbook := builder.NewReservationBuilder().WithName("Crowd").WithGuestCount(51).BuildReserveCommand()

		s.mockStore.EXPECT().TryInsert(gomock.Any(), key, gomock.Any(), gomock.Any()).Return(true, nil)
		s.mockRecorder.EXPECT().ReservationRejected(shared.RejectReasonCapacity)
		s.mockStore.EXPECT().Release(gomock.Any(), key).Return(nil)

		_, err := s.cmds.Reserve(s.ctx, overbook, &key)
		s.True(errs.Is(err, commands.ErrCapacityExceeded))
	})

	s.Run("store failure", func() {
		key := uuid.New()

		s.mockStore.EXPECT().TryInsert(gomock.Any(), key, gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))

		_, err := s.cmds.Reserve(s.ctx, req, &key)
		s.True(errs.Is(err, commands.ErrIdempotencyCheckFailed))
	})

	s.Run("completion failure still returns the reservation", func() {
		key := uuid.New()
		carol := builder.NewReservationBuilder().WithName("Carol").WithGuestCount(1).BuildReserveCommand()

		s.mockStore.EXPECT().TryInsert(gomock.Any(), key, gomock.Any(), gomock.Any()).Return(true, nil)
		s.mockRecorder.EXPECT().SeatsLeft(gomock.Any())
		s.mockRecorder.EXPECT().ReservationCreated(1)
		s.mockStore.EXPECT().Complete(gomock.Any(), key, gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("timeout"))

		result, err := s.cmds.Reserve(s.ctx, carol, &key)
		s.Require().NoError(err)
		s.Equal("Carol", result.Reservation.Name)
	})
}

// ================================================================================
// Checkout
// ================================================================================

func (s *LedgerCommandsTestSuite) TestCheckout() {
	res := s.reserveDirect("Alice", 4)
	s.Equal(46, s.seatsLeft())

	s.Run("first checkout releases seats", func() {
		s.clock.Add(time.Hour)
		s.mockRecorder.EXPECT().SeatsLeft(50)
		s.mockRecorder.EXPECT().ReservationCheckedOut(4)

		view, err := s.cmds.Checkout(s.ctx, res.ID)
		s.Require().NoError(err)
		s.True(view.CheckedOut)
		s.Require().NotNil(view.CheckOutTime)
		s.Equal(s.clock.Now(), *view.CheckOutTime)
		s.Equal(50, s.seatsLeft())
	})

	s.Run("second checkout is a no-op", func() {
		firstCheckout := s.clock.Now()
		s.clock.Add(time.Hour)
		s.mockRecorder.EXPECT().SeatsLeft(50)

		view, err := s.cmds.Checkout(s.ctx, res.ID)
		s.Require().NoError(err)
		s.Equal(firstCheckout, *view.CheckOutTime)
		s.Equal(50, s.seatsLeft())
	})

	s.Run("unknown reservation", func() {
		_, err := s.cmds.Checkout(s.ctx, uuid.New())
		s.ErrorIs(err, commands.ErrReservationNotFound)
	})
}

// ================================================================================
// Delete
// ================================================================================

func (s *LedgerCommandsTestSuite) TestDelete() {
	s.Run("active reservation releases seats", func() {
		res := s.reserveDirect("Alice", 4)

		s.mockRecorder.EXPECT().SeatsLeft(50)
		s.mockRecorder.EXPECT().ReservationDeleted(4)

		s.Require().NoError(s.cmds.Delete(s.ctx, res.ID))
		s.Equal(50, s.seatsLeft())
	})

	s.Run("checked out reservation releases nothing", func() {
		res := s.reserveDirect("Bob", 3)
		s.mockRecorder.EXPECT().SeatsLeft(50)
		s.mockRecorder.EXPECT().ReservationCheckedOut(3)
		_, err := s.cmds.Checkout(s.ctx, res.ID)
		s.Require().NoError(err)

		s.mockRecorder.EXPECT().SeatsLeft(50)
		s.mockRecorder.EXPECT().ReservationDeleted(0)

		s.Require().NoError(s.cmds.Delete(s.ctx, res.ID))
		s.Equal(50, s.seatsLeft())
	})

	s.Run("deleting twice", func() {
		res := s.reserveDirect("Carol", 2)
		s.mockRecorder.EXPECT().SeatsLeft(50)
		s.mockRecorder.EXPECT().ReservationDeleted(2)
		s.Require().NoError(s.cmds.Delete(s.ctx, res.ID))

		err := s.cmds.Delete(s.ctx, res.ID)
		s.ErrorIs(err, commands.ErrReservationNotFound)
		s.Equal(50, s.seatsLeft())
	})
}
