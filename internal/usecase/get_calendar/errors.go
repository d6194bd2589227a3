package get_calendar

import "errors"

var (
	// ErrInvalidInput is returned on an out-of-range year or month
	ErrInvalidInput = errors.New("get_calendar: invalid input data")

	// ErrStoreUnavailable is returned when the reservation store cannot
	// be read
	ErrStoreUnavailable = errors.New("get_calendar: reservation store unavailable")
)
