package models

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the auth and booking flows. Handlers translate these
// into HTTP statuses in one place; services and repositories return them
// (wrapped) and never write responses themselves.
var (
	// ErrInvalidRequest covers malformed input that passed transport-level
	// binding but violates a field constraint (empty seat list, duplicate
	// seat labels, unknown show id).
	ErrInvalidRequest = errors.New("invalid request")

	// Auth failures. Expired and tampered tokens are deliberately
	// indistinguishable to the caller: both are ErrInvalidToken.
	ErrMissingCredentials   = errors.New("missing authorization header")
	ErrMalformedCredentials = errors.New("malformed authorization header")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrForbidden            = errors.New("forbidden")

	// ErrInvalidCredentials is returned for both unknown email and wrong
	// password so login failures don't leak which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrDuplicateEmail = errors.New("email already registered")

	ErrNotFound = errors.New("not found")

	// ErrNotConfigured means the document store was unavailable at startup.
	// It is fatal for all data-touching routes; main exits on it rather than
	// serving in a degraded state.
	ErrNotConfigured = errors.New("document store not configured")
)

// SeatConflictError reports that one or more requested seats are already held
// by another booking for the same show. It always names at least one
// contested seat so the client knows what to resubmit without.
type SeatConflictError struct {
	ShowID string
	Seats  []string
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seats already booked for show %s: %s", e.ShowID, strings.Join(e.Seats, ", "))
}
