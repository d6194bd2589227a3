package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmily/ClinicReservationService/pkg/types"
)

func TestScheduleSlots(t *testing.T) {
	slots := ScheduleSlots()

	require.Len(t, slots, 16)

	// Endpoints of both blocks
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("11:30"), slots[5])
	assert.Equal(t, types.TimeString("13:00"), slots[6])
	assert.Equal(t, types.TimeString("17:30"), slots[15])

	// Strictly increasing, no duplicates
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]),
			"slot %s must precede %s", slots[i-1], slots[i])
	}
}

func TestScheduleSlots_LunchGap(t *testing.T) {
	for _, gap := range []types.TimeString{"12:00", "12:30"} {
		assert.False(t, IsScheduleSlot(gap), "lunch time %s must not be bookable", gap)
	}
}

func TestIsScheduleSlot(t *testing.T) {
	tests := []struct {
		input types.TimeString
		want  bool
	}{
		{"09:00", true},
		{"11:30", true},
		{"13:00", true},
		{"17:30", true},
		{"08:30", false}, // before opening
		{"18:00", false}, // after last slot
		{"12:00", false}, // lunch
		{"09:15", false}, // off-grid
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsScheduleSlot(tt.input), "slot %q", tt.input)
	}
}
