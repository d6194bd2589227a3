package domain

import (
	"time"

	"github.com/petmily/ClinicReservationService/pkg/types"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusPending  ReservationStatus = "PENDING"
	StatusApproved ReservationStatus = "APPROVED"
	StatusRejected ReservationStatus = "REJECTED"
)

// CareType represents the kind of visit being booked
type CareType string

const (
	CareGeneral     CareType = "GENERAL"
	CareVaccination CareType = "VACCINATION"
)

// ValidCareType reports whether the value is one of the enumerated care types.
func ValidCareType(c CareType) bool {
	return c == CareGeneral || c == CareVaccination
}

// Reservation represents a clinic visit reservation
type Reservation struct {
	ID       int64
	UserID   int64
	PetID    int64
	DoctorID *int64 // nil until staff assigns a doctor

	ReservationDate time.Time // calendar date, no time component
	StartTime       types.TimeString
	CareType        CareType

	Status  ReservationStatus
	Symptom *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot reports whether the reservation blocks its (date, time) slot.
// A rejected reservation frees its slot for rebooking.
func (r *Reservation) OccupiesSlot() bool {
	return r.Status != StatusRejected
}

// IsTerminal reports whether the reservation reached a final state.
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusApproved || r.Status == StatusRejected
}

// CanAssignDoctor reports whether a doctor may still be attached.
// Assignment is allowed while pending and after approval, never after rejection.
func (r *Reservation) CanAssignDoctor() bool {
	return r.Status == StatusPending || r.Status == StatusApproved
}

// CanTransitionTo reports whether the status may move to newStatus.
// Only PENDING reservations transition; both targets are terminal.
func (r *Reservation) CanTransitionTo(newStatus ReservationStatus) bool {
	if newStatus != StatusApproved && newStatus != StatusRejected {
		return false
	}
	return r.Status == StatusPending
}

// ReservationsFilter controls repository reads over the reservation store
type ReservationsFilter struct {
	StartDate  *time.Time          // period start (inclusive), nil = unbounded
	EndDate    *time.Time          // period end (inclusive), nil = unbounded
	UserID     *int64              // limit to one owner's reservations
	Statuses   []ReservationStatus // limit to these statuses, nil = all
	OnlyActive bool                // shortcut: exclude REJECTED
}
