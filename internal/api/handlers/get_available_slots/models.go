package get_available_slots

import (
	"github.com/petmily/ClinicReservationService/internal/domain"
	getAvailableSlots "github.com/petmily/ClinicReservationService/internal/usecase/get_available_slots"
)

// SlotView is one grid slot on the wire
type SlotView struct {
	StartTime string `json:"startTime"`
	Available bool   `json:"available"`
}

// GetAvailableSlotsResponse lists the full clinic grid for one date
type GetAvailableSlotsResponse struct {
	Date  string     `json:"date"`
	Slots []SlotView `json:"slots"`
}

// FromUseCaseResponse converts the use case result to the wire shape
func FromUseCaseResponse(res *getAvailableSlots.Response) *GetAvailableSlotsResponse {
	slots := make([]SlotView, len(res.Slots))
	for i, slot := range res.Slots {
		slots[i] = SlotView{
			StartTime: slot.StartTime.String(),
			Available: slot.Available,
		}
	}
	return &GetAvailableSlotsResponse{
		Date:  res.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
