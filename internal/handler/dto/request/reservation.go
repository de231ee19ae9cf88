package request

import (
	"bytes"
	"encoding/json"

	"restro-ledger/internal/pkg/errs"
	"restro-ledger/internal/usecase/commands"
)

// Length limits apply after trimming, so they are enforced by the domain value
// objects rather than binding tags.
type CreateReservationRequest struct {
	Name       string     `json:"name" binding:"required" maxLength:"100"`
	Phone      string     `json:"phone" maxLength:"32"`
	GuestCount GuestCount `json:"guestCount" binding:"required" swaggertype:"string" example:"4"`
}

func (r CreateReservationRequest) ToCommand() commands.ReserveRequest {
	return commands.ReserveRequest{
		Name:       r.Name,
		Phone:      r.Phone,
		GuestCount: string(r.GuestCount),
	}
}

// GuestCount keeps the raw value so the use case applies one parsing rule
// whether the client sent 4 or "4".
type GuestCount string

func (g *GuestCount) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*g = GuestCount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errs.Wrap(err, "guestCount must be a number or a numeric string")
	}
	*g = GuestCount(n.String())
	return nil
}
