package list_doctors

import (
	"context"

	"github.com/petmily/ClinicReservationService/internal/domain"
	"github.com/petmily/ClinicReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	ListAssignableDoctors(ctx context.Context, scope domain.ViewerScope) ([]*models.DoctorResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
