package get_available_slots

import (
	"context"

	"github.com/petmily/ClinicReservationService/internal/domain"
)

// ReservationRepository is the read surface the resolver needs
type ReservationRepository interface {
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// Logger is the logging surface the resolver needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
