package ledger

import (
	"strings"

	"restro-ledger/internal/pkg/errs"
)

var ErrInvalidDuplicateScope = errs.New("invalid duplicate name scope")

// DuplicateScope selects which reservations block reuse of a guest name.
type DuplicateScope string

const (
	// ScopeActive: only reservations that still hold seats.
	ScopeActive DuplicateScope = "active"
	// ScopeListed: every reservation still in the list, checked out or not.
	ScopeListed DuplicateScope = "listed"
)

func ParseDuplicateScope(s string) (DuplicateScope, error) {
	scope := DuplicateScope(strings.ToLower(strings.TrimSpace(s)))
	if !scope.IsValid() {
		return "", errs.Wrapf(ErrInvalidDuplicateScope, "got %q", s)
	}
	return scope, nil
}

func (s DuplicateScope) IsValid() bool {
	switch s {
	case ScopeActive, ScopeListed:
		return true
	default:
		return false
	}
}
