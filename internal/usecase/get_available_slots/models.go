package get_available_slots

import (
	"time"

	"github.com/petmily/ClinicReservationService/internal/domain"
)

// Request asks for slot availability on one date
type Request struct {
	Date time.Time // calendar date, no time component
}

// Response lists every grid slot with its availability. The slice always
// has the grid's cardinality and order.
type Response struct {
	Date  time.Time
	Slots []domain.Slot
}
