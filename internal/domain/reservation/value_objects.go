package reservation

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"restro-ledger/internal/pkg/errs"
)

const (
	MaxNameLength  = 100
	MaxPhoneLength = 32
)

var (
	ErrInvalidName       = errs.New("guest name must be a non-empty string")
	ErrInvalidPhone      = errs.New("invalid phone number")
	ErrInvalidGuestCount = errs.New("guest count must be a positive integer")
)

// GuestName is compared exactly (case-sensitive) after trimming surrounding whitespace.
type GuestName struct {
	value string
}

func NewGuestName(s string) (GuestName, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return GuestName{}, ErrInvalidName
	}
	if utf8.RuneCountInString(t) > MaxNameLength {
		return GuestName{}, errs.Wrapf(ErrInvalidName, "longer than %d characters", MaxNameLength)
	}
	return GuestName{value: t}, nil
}

func (n GuestName) String() string { return n.value }

func (n GuestName) Equal(other GuestName) bool { return n.value == other.value }

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) > MaxPhoneLength {
		return Phone{}, errs.Wrapf(ErrInvalidPhone, "longer than %d characters", MaxPhoneLength)
	}
	return Phone{value: t}, nil
}

func (p Phone) String() string { return p.value }

type GuestCount struct {
	value int
}

func NewGuestCount(n int) (GuestCount, error) {
	if n <= 0 {
		return GuestCount{}, ErrInvalidGuestCount
	}
	return GuestCount{value: n}, nil
}

// ParseGuestCount accepts the raw form value. Trailing garbage such as "4 people"
// is rejected rather than truncated.
func ParseGuestCount(s string) (GuestCount, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return GuestCount{}, errs.Mark(errs.Wrapf(err, "parse guest count %q", s), ErrInvalidGuestCount)
	}
	return NewGuestCount(n)
}

func (g GuestCount) Int() int { return g.value }
