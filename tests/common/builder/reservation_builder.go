//go:build unit || e2e

package builder

import (
	"strconv"
	"time"

	"restro-ledger/internal/domain/reservation"
	reqdto "restro-ledger/internal/handler/dto/request"
	"restro-ledger/internal/usecase/commands"
	"restro-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	Name         string
	Phone        string
	GuestCount   int
	CheckInTime  time.Time
	CheckOutTime *time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		Name:        "Alice",
		Phone:       "555-0100",
		GuestCount:  4,
		CheckInTime: time.Now(),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) WithName(name string) *ReservationBuilder {
	r.Name = name
	return r
}

func (r *ReservationBuilder) WithPhone(phone string) *ReservationBuilder {
	r.Phone = phone
	return r
}

func (r *ReservationBuilder) WithGuestCount(n int) *ReservationBuilder {
	r.GuestCount = n
	return r
}

func (r *ReservationBuilder) WithCheckInTime(t time.Time) *ReservationBuilder {
	r.CheckInTime = t
	return r
}

func (r *ReservationBuilder) WithCheckedOut(at time.Time) *ReservationBuilder {
	r.CheckOutTime = &at
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	name, err := reservation.NewGuestName(r.Name)
	if err != nil {
		return nil, err
	}
	phone, err := reservation.NewPhone(r.Phone)
	if err != nil {
		return nil, err
	}
	count, err := reservation.NewGuestCount(r.GuestCount)
	if err != nil {
		return nil, err
	}
	if r.CheckOutTime != nil {
		return reservation.ReconstructReservation(
			uuid.Must(uuid.NewV7()), name, phone, count,
			reservation.StatusCheckedOut, r.CheckInTime, r.CheckOutTime,
		), nil
	}
	return reservation.NewReservation(name, phone, count, r.CheckInTime)
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		Name:       r.Name,
		Phone:      r.Phone,
		GuestCount: reqdto.GuestCount(strconv.Itoa(r.GuestCount)),
	}
}

func (r *ReservationBuilder) BuildReserveCommand() commands.ReserveRequest {
	return commands.ReserveRequest{
		Name:       r.Name,
		Phone:      r.Phone,
		GuestCount: strconv.Itoa(r.GuestCount),
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	status := reservation.StatusActive
	if r.CheckOutTime != nil {
		status = reservation.StatusCheckedOut
	}
	return &queries.ReservationView{
		ID:           uuid.Must(uuid.NewV7()),
		Name:         r.Name,
		Phone:        r.Phone,
		GuestCount:   r.GuestCount,
		Status:       status.String(),
		CheckedOut:   r.CheckOutTime != nil,
		CheckInTime:  r.CheckInTime,
		CheckOutTime: r.CheckOutTime,
	}
}
