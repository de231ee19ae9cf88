package shared

//go:generate mockgen -source=recorder.go -destination=../../../tests/mock/shared/recorder.go -package=sharedmock

// LedgerRecorder receives ledger outcomes for observability.
type LedgerRecorder interface {
	ReservationCreated(guests int)
	ReservationRejected(reason string)
	ReservationCheckedOut(guests int)
	ReservationDeleted(releasedSeats int)
	SeatsLeft(n int)
}

const (
	RejectReasonCapacity  = "capacity"
	RejectReasonDuplicate = "duplicate_name"
	RejectReasonInvalid   = "invalid_input"
)
