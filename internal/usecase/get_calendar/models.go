package get_calendar

import "github.com/petmily/ClinicReservationService/internal/domain"

// Request asks for one month's booking-density markers
type Request struct {
	Year  int
	Month int                // 1..12
	Scope domain.ViewerScope // owner sees only their own reservations
}

// Response carries one marker per calendar day of the month, in day order
type Response struct {
	Year  int
	Month int
	Days  []domain.CalendarDayMarker
}
