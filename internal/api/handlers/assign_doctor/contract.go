package assign_doctor

import (
	"context"

	"github.com/petmily/ClinicReservationService/internal/domain"
	assignDoctor "github.com/petmily/ClinicReservationService/internal/usecase/assign_doctor"
)

type AssignDoctorUseCase interface {
	Execute(ctx context.Context, req *assignDoctor.Request) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
