package get_available_slots

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrStoreUnavailable is returned when the reservation store cannot be
	// read. The resolver never reports slots as free on a failed read -
	// that would invite double-booking.
	ErrStoreUnavailable = errors.New("get_available_slots: reservation store unavailable")
)
