package update_status

import (
	"context"

	"github.com/petmily/ClinicReservationService/internal/domain"
	transitionStatus "github.com/petmily/ClinicReservationService/internal/usecase/transition_status"
)

type TransitionStatusUseCase interface {
	Execute(ctx context.Context, req *transitionStatus.Request) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
