package get_user_reservations

import (
	"context"

	"github.com/petmily/ClinicReservationService/internal/domain"
	"github.com/petmily/ClinicReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	GetByUser(ctx context.Context, userID int64, status *string, scope domain.ViewerScope) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
