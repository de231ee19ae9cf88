//go:build unit

package response_test

import (
	"testing"
	"time"

	resdto "restro-ledger/internal/handler/dto/response"
	"restro-ledger/internal/usecase/queries"
	"restro-ledger/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromReservationView(t *testing.T) {
	checkOut := time.Date(2026, 10, 16, 21, 0, 0, 0, time.UTC)
	view := builder.NewReservationBuilder().WithCheckedOut(checkOut).BuildView()

	resp, err := resdto.FromReservationView(view)
	require.NoError(t, err)

	assert.Equal(t, view.ID, resp.ID)
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, "555-0100", resp.Phone)
	assert.Equal(t, 4, resp.GuestCount)
	assert.Equal(t, "checked_out", resp.Status)
	assert.True(t, resp.CheckedOut)
	assert.Equal(t, view.CheckInTime, resp.CheckInTime)
	require.NotNil(t, resp.CheckOutTime)
	assert.Equal(t, checkOut, *resp.CheckOutTime)
}

func TestFromLedgerView(t *testing.T) {
	cases := []struct {
		seatsLeft int
		lowSeats  bool
	}{
		{seatsLeft: 50, lowSeats: false},
		{seatsLeft: 10, lowSeats: false},
		{seatsLeft: 9, lowSeats: true},
		{seatsLeft: 0, lowSeats: true},
	}

	for _, tc := range cases {
		view := &queries.LedgerView{TotalSeats: 50, SeatsLeft: tc.seatsLeft}

		resp, err := resdto.FromLedgerView(view, 10)
		require.NoError(t, err)
		assert.Equal(t, tc.lowSeats, resp.LowSeats, "seatsLeft=%d", tc.seatsLeft)
		assert.NotNil(t, resp.Reservations)
	}
}
