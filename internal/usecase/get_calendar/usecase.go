package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/petmily/ClinicReservationService/internal/domain"
)

// UseCase summarizes a month of reservations into per-day presence flags.
// The markers are deliberately coarse - "any reservation that day", not a
// count - because that is all the calendar widget renders.
type UseCase struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase creates the calendar aggregator
func NewUseCase(reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute returns a marker for every day of the month, in order. A day is
// marked when at least one reservation of ANY status falls on it within the
// viewer's scope - a rejected visit still shows on the owner's calendar.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: year=%d, month=%d, role=%s", req.Year, req.Month, req.Scope.Role)

	if req.Month < 1 || req.Month > 12 {
		return nil, fmt.Errorf("%w: month must be 1..12, got %d", ErrInvalidInput, req.Month)
	}
	if req.Year < 1 || req.Year > 9999 {
		return nil, fmt.Errorf("%w: year %d out of range", ErrInvalidInput, req.Year)
	}

	first := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	// Owner scope narrows to the caller's own reservations
	var userID *int64
	if !req.Scope.SeesAllReservations() {
		userID = &req.Scope.UserID
	}

	reservedDays, err := uc.reservationRepo.GetReservedDays(ctx, first, last, userID)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to read reserved days for %d-%02d: %v",
			req.Year, req.Month, err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	reserved := make(map[int]bool, len(reservedDays))
	for _, day := range reservedDays {
		reserved[day.Day()] = true
	}

	days := make([]domain.CalendarDayMarker, last.Day())
	for i := range days {
		day := i + 1
		days[i] = domain.CalendarDayMarker{
			Day:            day,
			HasReservation: reserved[day],
		}
	}

	uc.logger.Info("GetCalendar: %d of %d days marked for %d-%02d",
		len(reservedDays), len(days), req.Year, req.Month)

	return &Response{
		Year:  req.Year,
		Month: req.Month,
		Days:  days,
	}, nil
}
