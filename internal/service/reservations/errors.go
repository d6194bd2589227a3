package reservations

import "errors"

var (
	// ErrReservationNotFound is returned when no reservation matches the id
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied is returned when the viewer scope does not cover the
	// requested data
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrStoreUnavailable is returned when the reservation store cannot be read
	ErrStoreUnavailable = errors.New("reservation store unavailable")

	// ErrDirectoryUnavailable is returned when the staff directory cannot
	// be reached
	ErrDirectoryUnavailable = errors.New("staff directory unavailable")
)
