package transition_status

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data, including a
	// target status outside {APPROVED, REJECTED}
	ErrInvalidInput = errors.New("transition_status: invalid input data")

	// ErrAccessDenied is returned when the actor is not clinic staff
	ErrAccessDenied = errors.New("transition_status: access denied")

	// ErrReservationNotFound is returned when the reservation does not exist
	ErrReservationNotFound = errors.New("transition_status: reservation not found")

	// ErrInvalidTransition is returned when the reservation is already in
	// a different terminal state. Repeating the status the record already
	// has is NOT an error - that path is an idempotent no-op.
	ErrInvalidTransition = errors.New("transition_status: invalid status transition")

	// ErrStoreUnavailable is returned when the reservation store cannot
	// be reached
	ErrStoreUnavailable = errors.New("transition_status: reservation store unavailable")
)
