package reservations

import (
	"context"
	"time"

	"github.com/petmily/ClinicReservationService/internal/domain"
	"github.com/petmily/ClinicReservationService/internal/integrations/staffservice"
)

// ReservationRepository is the read surface the query service needs
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	GetReservedDays(ctx context.Context, from, to time.Time, userID *int64) ([]time.Time, error)
}

// StaffServiceClient lists assignable doctors for the staff UI
type StaffServiceClient interface {
	ListOnDutyDoctors(ctx context.Context) ([]staffservice.Doctor, error)
}

// Logger is the logging surface the service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
