package get_day_reservations

import (
	"context"
	"time"

	"github.com/petmily/ClinicReservationService/internal/domain"
	"github.com/petmily/ClinicReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	GetByDate(ctx context.Context, date time.Time, scope domain.ViewerScope) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
