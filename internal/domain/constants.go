package domain

import "errors"

// ErrUnknownStatus is returned when a status string is not one of the
// enumerated reservation statuses.
var ErrUnknownStatus = errors.New("domain: unknown reservation status")

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxSymptomLength = 500
)

// ActiveStatuses are the statuses that occupy a slot.
// A rejected reservation releases its slot.
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusApproved,
}

// ValidStatus reports whether s is one of the enumerated reservation statuses.
func ValidStatus(s ReservationStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}
