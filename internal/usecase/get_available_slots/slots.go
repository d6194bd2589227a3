package get_available_slots

import (
	"github.com/petmily/ClinicReservationService/internal/domain"
	"github.com/petmily/ClinicReservationService/pkg/types"
)

// resolveSlots marks each grid entry unavailable iff an occupying
// reservation holds its time. It also reports slot times claimed by more
// than one occupying reservation: that cannot happen through the write
// paths and means the store is corrupt, so the caller logs it. The slot is
// still reported unavailable rather than crashing or guessing.
func resolveSlots(reservations []*domain.Reservation) (slots []domain.Slot, conflicted []types.TimeString) {
	occupied := make(map[types.TimeString]int)
	for _, res := range reservations {
		if !res.OccupiesSlot() {
			continue
		}
		occupied[res.StartTime]++
	}

	grid := domain.ScheduleSlots()
	slots = make([]domain.Slot, len(grid))
	for i, start := range grid {
		count := occupied[start]
		slots[i] = domain.Slot{
			StartTime: start,
			Available: count == 0,
		}
		if count > 1 {
			conflicted = append(conflicted, start)
		}
	}

	return slots, conflicted
}
