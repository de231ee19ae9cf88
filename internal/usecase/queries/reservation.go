package queries

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation.go -package=queriesmock

import (
	"context"
	"time"

	"restro-ledger/internal/domain/ledger"
	"restro-ledger/internal/domain/reservation"
	"restro-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrReservationNotFound = ledger.ErrReservationNotFound

// Read models (DTO for read side)
type ReservationView struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	GuestCount   int        `json:"guest_count"`
	Status       string     `json:"status"`
	CheckedOut   bool       `json:"checked_out"`
	CheckInTime  time.Time  `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
}

type LedgerView struct {
	TotalSeats   int                `json:"total_seats"`
	SeatsLeft    int                `json:"seats_left"`
	Reservations []*ReservationView `json:"reservations"`
}

func NewReservationView(r *reservation.Reservation) *ReservationView {
	return &ReservationView{
		ID:           r.ID(),
		Name:         r.Name().String(),
		Phone:        r.Phone().String(),
		GuestCount:   r.GuestCount().Int(),
		Status:       r.Status().String(),
		CheckedOut:   r.IsCheckedOut(),
		CheckInTime:  r.CheckInTime(),
		CheckOutTime: r.CheckOutTime(),
	}
}

func NewLedgerView(st ledger.State) *LedgerView {
	views := make([]*ReservationView, 0, len(st.Reservations))
	for _, r := range st.Reservations {
		views = append(views, NewReservationView(r))
	}
	return &LedgerView{
		TotalSeats:   st.TotalSeats,
		SeatsLeft:    st.SeatsLeft,
		Reservations: views,
	}
}

type LedgerQueries interface {
	State(ctx context.Context) (*LedgerView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
}

type ledgerQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewLedgerQueries(uow shared.UnitOfWork) LedgerQueries {
	return &ledgerQueriesImpl{uow: uow}
}

func (q *ledgerQueriesImpl) State(ctx context.Context) (*LedgerView, error) {
	var view *LedgerView
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, l shared.LedgerReader) error {
		view = NewLedgerView(l.State())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *ledgerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	var view *ReservationView
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, l shared.LedgerReader) error {
		res, err := l.Find(id)
		if err != nil {
			return err
		}
		view = NewReservationView(res)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
