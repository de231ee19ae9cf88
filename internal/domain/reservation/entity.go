package reservation

import (
	"time"

	"restro-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

type Reservation struct {
	id           uuid.UUID
	name         GuestName
	phone        Phone
	guestCount   GuestCount
	status       Status
	checkInTime  time.Time
	checkOutTime *time.Time
}

// NewReservation assigns a UUIDv7 so ids created later sort after earlier ones.
func NewReservation(name GuestName, phone Phone, guestCount GuestCount, now time.Time) (*Reservation, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errs.Wrap(err, "generate reservation id")
	}

	return &Reservation{
		id:          id,
		name:        name,
		phone:       phone,
		guestCount:  guestCount,
		status:      StatusActive,
		checkInTime: now,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	name GuestName,
	phone Phone,
	guestCount GuestCount,
	status Status,
	checkInTime time.Time,
	checkOutTime *time.Time,
) *Reservation {
	return &Reservation{
		id:           id,
		name:         name,
		phone:        phone,
		guestCount:   guestCount,
		status:       status,
		checkInTime:  checkInTime,
		checkOutTime: copyTime(checkOutTime),
	}
}

// CheckOut reports whether this call performed the transition. A reservation
// that is already checked out keeps its original checkout time.
func (r *Reservation) CheckOut(now time.Time) bool {
	if r.status == StatusCheckedOut {
		return false
	}
	r.status = StatusCheckedOut
	r.checkOutTime = &now
	return true
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

func (r *Reservation) IsCheckedOut() bool {
	return r.status == StatusCheckedOut
}

func (r *Reservation) Clone() *Reservation {
	c := *r
	c.checkOutTime = copyTime(r.checkOutTime)
	return &c
}

func (r *Reservation) ID() uuid.UUID            { return r.id }
func (r *Reservation) Name() GuestName          { return r.name }
func (r *Reservation) Phone() Phone             { return r.phone }
func (r *Reservation) GuestCount() GuestCount   { return r.guestCount }
func (r *Reservation) Status() Status           { return r.status }
func (r *Reservation) CheckInTime() time.Time   { return r.checkInTime }
func (r *Reservation) CheckOutTime() *time.Time { return copyTime(r.checkOutTime) }

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
