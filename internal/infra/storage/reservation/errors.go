package reservation

import "errors"

var (
	// ErrReservationNotFound is returned when no reservation matches the id
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrSlotTaken is returned when the partial unique index on
	// (reservation_date, start_time) rejects an insert - another
	// non-rejected reservation already holds the slot
	ErrSlotTaken = errors.New("reservation.repository: slot already taken")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
