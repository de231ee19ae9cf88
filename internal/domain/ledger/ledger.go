// Package ledger owns the seat capacity of the restaurant and every reservation
// that currently holds or has held seats.
//
// A Ledger is not safe for concurrent use. Callers that serve several clients
// must serialise Reserve, Checkout and Delete (see infra/uow).
package ledger

import (
	"slices"

	"restro-ledger/internal/domain/reservation"
	"restro-ledger/internal/pkg/clock"
	"restro-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

const DefaultTotalSeats = 50

var (
	ErrCapacityExceeded    = errs.New("not enough seats available")
	ErrDuplicateName       = errs.New("a reservation with this name already exists")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrInvalidTotalSeats   = errs.New("total seats must be positive")
)

type State struct {
	TotalSeats   int
	SeatsLeft    int
	Reservations []*reservation.Reservation
}

type Ledger struct {
	clock        clock.Clock
	totalSeats   int
	seatsLeft    int
	scope        DuplicateScope
	reservations []*reservation.Reservation // newest first
}

func New(totalSeats int, scope DuplicateScope, clk clock.Clock) (*Ledger, error) {
	if totalSeats <= 0 {
		return nil, errs.Wrapf(ErrInvalidTotalSeats, "got %d", totalSeats)
	}
	if !scope.IsValid() {
		return nil, errs.Wrapf(ErrInvalidDuplicateScope, "got %q", scope)
	}
	return &Ledger{
		clock:      clk,
		totalSeats: totalSeats,
		seatsLeft:  totalSeats,
		scope:      scope,
	}, nil
}

// Reserve validates everything before touching state, so a failed call leaves
// the ledger exactly as it was. Capacity is checked before name collisions.
func (l *Ledger) Reserve(name, phone string, guestCount int) (*reservation.Reservation, error) {
	guestName, err := reservation.NewGuestName(name)
	if err != nil {
		return nil, err
	}
	contact, err := reservation.NewPhone(phone)
	if err != nil {
		return nil, err
	}
	count, err := reservation.NewGuestCount(guestCount)
	if err != nil {
		return nil, err
	}

	if count.Int() > l.seatsLeft {
		return nil, errs.Wrapf(ErrCapacityExceeded, "requested %d, available %d", count.Int(), l.seatsLeft)
	}
	if l.nameTaken(guestName) {
		return nil, errs.Wrapf(ErrDuplicateName, "name %q", guestName.String())
	}

	res, err := reservation.NewReservation(guestName, contact, count, l.clock.Now())
	if err != nil {
		return nil, err
	}

	l.reservations = slices.Insert(l.reservations, 0, res)
	l.seatsLeft -= count.Int()

	return res.Clone(), nil
}

// Checkout releases the reservation's seats the first time it is called.
// Later calls return the reservation unchanged.
func (l *Ledger) Checkout(id uuid.UUID) (*reservation.Reservation, error) {
	i, err := l.indexOf(id)
	if err != nil {
		return nil, err
	}

	res := l.reservations[i]
	if res.CheckOut(l.clock.Now()) {
		l.seatsLeft += res.GuestCount().Int()
	}

	return res.Clone(), nil
}

// Delete removes the reservation. Seats are released only if the reservation
// was still active; a checked-out reservation already gave them back.
func (l *Ledger) Delete(id uuid.UUID) error {
	i, err := l.indexOf(id)
	if err != nil {
		return err
	}

	res := l.reservations[i]
	if res.IsActive() {
		l.seatsLeft += res.GuestCount().Int()
	}
	l.reservations = slices.Delete(l.reservations, i, i+1)

	return nil
}

func (l *Ledger) Find(id uuid.UUID) (*reservation.Reservation, error) {
	i, err := l.indexOf(id)
	if err != nil {
		return nil, err
	}
	return l.reservations[i].Clone(), nil
}

// State returns copies; mutating them does not affect the ledger.
func (l *Ledger) State() State {
	list := make([]*reservation.Reservation, len(l.reservations))
	for i, r := range l.reservations {
		list[i] = r.Clone()
	}
	return State{
		TotalSeats:   l.totalSeats,
		SeatsLeft:    l.seatsLeft,
		Reservations: list,
	}
}

func (l *Ledger) TotalSeats() int { return l.totalSeats }
func (l *Ledger) SeatsLeft() int  { return l.seatsLeft }

func (l *Ledger) indexOf(id uuid.UUID) (int, error) {
	i := slices.IndexFunc(l.reservations, func(r *reservation.Reservation) bool {
		return r.ID() == id
	})
	if i < 0 {
		return -1, errs.Wrapf(ErrReservationNotFound, "id %s", id)
	}
	return i, nil
}

func (l *Ledger) nameTaken(name reservation.GuestName) bool {
	return slices.ContainsFunc(l.reservations, func(r *reservation.Reservation) bool {
		if !r.Name().Equal(name) {
			return false
		}
		return l.scope == ScopeListed || r.IsActive()
	})
}
