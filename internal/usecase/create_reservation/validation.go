package create_reservation

import (
	"fmt"

	"github.com/petmily/ClinicReservationService/internal/domain"
)

// validateRequest rejects malformed input before anything touches the
// store or the directories. Past dates are deliberately NOT rejected here:
// the booking UI defaults its date picker to today but the API stays
// permissive.
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.PetID <= 0 {
		return fmt.Errorf("%w: petID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	// Arbitrary times are not bookable, only grid members
	if !domain.IsScheduleSlot(req.StartTime) {
		return fmt.Errorf("%w: startTime %s is not a clinic slot", ErrInvalidInput, req.StartTime)
	}

	if !domain.ValidCareType(req.CareType) {
		return fmt.Errorf("%w: unknown care type %q", ErrInvalidInput, req.CareType)
	}

	if req.Symptom != nil && len(*req.Symptom) > domain.MaxSymptomLength {
		return fmt.Errorf("%w: symptom exceeds %d characters", ErrInvalidInput, domain.MaxSymptomLength)
	}

	return nil
}

// slotOccupied reports whether any of the reservations holds startTime.
// Callers pass only active (non-rejected) reservations.
func slotOccupied(reservations []*domain.Reservation, req *Request) bool {
	for _, res := range reservations {
		if !res.OccupiesSlot() {
			continue
		}
		if res.StartTime == req.StartTime {
			return true
		}
	}
	return false
}
