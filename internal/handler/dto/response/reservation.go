package response

import (
	"time"

	"restro-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	GuestCount   int        `json:"guestCount"`
	Status       string     `json:"status"`
	CheckedOut   bool       `json:"checkedOut"`
	CheckInTime  time.Time  `json:"checkInTime"`
	CheckOutTime *time.Time `json:"checkOutTime,omitempty"`
}

type LedgerStateResponse struct {
	TotalSeats   int                    `json:"totalSeats"`
	SeatsLeft    int                    `json:"seatsLeft"`
	LowSeats     bool                   `json:"lowSeats"`
	Reservations []*ReservationResponse `json:"reservations"`
}

func FromReservationView(view *queries.ReservationView) (*ReservationResponse, error) {
	resp := &ReservationResponse{}
	if err := copier.Copy(resp, view); err != nil {
		return nil, err
	}
	return resp, nil
}

// FromLedgerView flags lowSeats when fewer than lowSeatsThreshold seats remain.
func FromLedgerView(view *queries.LedgerView, lowSeatsThreshold int) (*LedgerStateResponse, error) {
	resp := &LedgerStateResponse{
		TotalSeats:   view.TotalSeats,
		SeatsLeft:    view.SeatsLeft,
		LowSeats:     view.SeatsLeft < lowSeatsThreshold,
		Reservations: make([]*ReservationResponse, 0, len(view.Reservations)),
	}
	for _, r := range view.Reservations {
		item, err := FromReservationView(r)
		if err != nil {
			return nil, err
		}
		resp.Reservations = append(resp.Reservations, item)
	}
	return resp, nil
}
