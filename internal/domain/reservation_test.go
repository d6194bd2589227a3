package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservation_OccupiesSlot(t *testing.T) {
	assert.True(t, (&Reservation{Status: StatusPending}).OccupiesSlot())
	assert.True(t, (&Reservation{Status: StatusApproved}).OccupiesSlot())
	assert.False(t, (&Reservation{Status: StatusRejected}).OccupiesSlot())
}

func TestReservation_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		current ReservationStatus
		target  ReservationStatus
		want    bool
	}{
		{name: "pending to approved", current: StatusPending, target: StatusApproved, want: true},
		{name: "pending to rejected", current: StatusPending, target: StatusRejected, want: true},
		{name: "approved to rejected", current: StatusApproved, target: StatusRejected, want: false},
		{name: "rejected to approved", current: StatusRejected, target: StatusApproved, want: false},
		{name: "pending to pending", current: StatusPending, target: StatusPending, want: false},
		{name: "approved to approved", current: StatusApproved, target: StatusApproved, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := &Reservation{Status: tt.current}
			assert.Equal(t, tt.want, res.CanTransitionTo(tt.target))
		})
	}
}

func TestReservation_CanAssignDoctor(t *testing.T) {
	assert.True(t, (&Reservation{Status: StatusPending}).CanAssignDoctor())
	assert.True(t, (&Reservation{Status: StatusApproved}).CanAssignDoctor())
	assert.False(t, (&Reservation{Status: StatusRejected}).CanAssignDoctor())
}

func TestReservation_IsTerminal(t *testing.T) {
	assert.False(t, (&Reservation{Status: StatusPending}).IsTerminal())
	assert.True(t, (&Reservation{Status: StatusApproved}).IsTerminal())
	assert.True(t, (&Reservation{Status: StatusRejected}).IsTerminal())
}

func TestViewerScope(t *testing.T) {
	owner := OwnerScope(7)
	staff := StaffScope(3)
	admin := AdminScope(1)

	assert.False(t, owner.Role.IsClinicStaff())
	assert.True(t, staff.Role.IsClinicStaff())
	assert.True(t, admin.Role.IsClinicStaff())

	assert.False(t, owner.SeesAllReservations())
	assert.True(t, staff.SeesAllReservations())
	assert.True(t, admin.SeesAllReservations())

	assert.Equal(t, int64(7), owner.UserID)
}

func TestValidCareType(t *testing.T) {
	assert.True(t, ValidCareType(CareGeneral))
	assert.True(t, ValidCareType(CareVaccination))
	assert.False(t, ValidCareType("SURGERY"))
	assert.False(t, ValidCareType(""))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusApproved))
	assert.True(t, ValidStatus(StatusRejected))
	assert.False(t, ValidStatus("CANCELLED"))
}
