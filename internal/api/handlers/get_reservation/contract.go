package get_reservation

import (
	"context"

	"github.com/petmily/ClinicReservationService/internal/domain"
	"github.com/petmily/ClinicReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	GetByID(ctx context.Context, id int64, scope domain.ViewerScope) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
