package domain

import "github.com/petmily/ClinicReservationService/pkg/types"

// The clinic runs a single fixed daily grid: morning block 09:00-11:30 and
// afternoon block 13:00-17:30, both in 30-minute steps. The 11:30-13:00 gap
// is the lunch break and is permanent. The grid is clinic-wide and not
// date-dependent.
const SlotStepMinutes = 30

type scheduleBlock struct {
	first types.TimeString // first bookable slot of the block
	last  types.TimeString // last bookable slot of the block (inclusive)
}

var scheduleBlocks = []scheduleBlock{
	{first: "09:00", last: "11:30"},
	{first: "13:00", last: "17:30"},
}

// ScheduleSlots returns the canonical ordered sequence of bookable
// time-of-day values for a business day. Pure and total.
func ScheduleSlots() []types.TimeString {
	slots := make([]types.TimeString, 0, 16)
	for _, block := range scheduleBlocks {
		cur := block.first
		for {
			slots = append(slots, cur)
			if cur == block.last {
				break
			}
			next, err := cur.AddMinutes(SlotStepMinutes)
			if err != nil {
				// Block bounds are compile-time constants; unreachable.
				break
			}
			cur = next
		}
	}
	return slots
}

// IsScheduleSlot reports whether t is a member of the clinic grid.
func IsScheduleSlot(t types.TimeString) bool {
	for _, slot := range ScheduleSlots() {
		if slot == t {
			return true
		}
	}
	return false
}

// Slot is a derived (time, availability) pair for a single date.
// Computed on demand, never stored.
type Slot struct {
	StartTime types.TimeString
	Available bool
}

// CalendarDayMarker is a derived per-day presence flag for one month.
// It deliberately carries no reservation detail and no count.
type CalendarDayMarker struct {
	Day            int
	HasReservation bool
}
