package get_available_slots

import (
	"context"
	"fmt"

	"github.com/petmily/ClinicReservationService/internal/domain"
)

// UseCase answers "which grid slots are free on date D"
type UseCase struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase creates the availability resolver
func NewUseCase(reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute resolves availability for one date. Only PENDING and APPROVED
// reservations occupy slots; a REJECTED reservation has released its slot.
// The date is accepted as-is: past dates resolve like any other (the API
// boundary does not reject them, matching the booking UI which only nudges
// the default to today).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: missing date")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	filter := domain.ReservationsFilter{
		StartDate:  &req.Date,
		EndDate:    &req.Date,
		OnlyActive: true,
	}

	reservations, err := uc.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to read reservations for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	slots, conflicted := resolveSlots(reservations)
	for _, slot := range conflicted {
		uc.logger.Warn("GetAvailableSlots: multiple active reservations hold slot %s on %s, reporting it unavailable",
			slot, req.Date.Format(domain.DateFormat))
	}

	uc.logger.Info("GetAvailableSlots: resolved %d slots for date=%s",
		len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}
