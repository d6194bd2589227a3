package create_reservation

import (
	"context"

	"github.com/petmily/ClinicReservationService/internal/domain"
	"github.com/petmily/ClinicReservationService/internal/integrations/notifyservice"
	"github.com/petmily/ClinicReservationService/internal/integrations/petservice"
)

// ReservationRepository is the store surface the create path needs
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// PetServiceClient is the pet directory surface used for ownership checks
type PetServiceClient interface {
	GetPet(ctx context.Context, petID int64) (*petservice.Pet, error)
}

// NotifyServiceClient publishes reservation lifecycle events
type NotifyServiceClient interface {
	Publish(ctx context.Context, event notifyservice.Event) error
}

// TransactionManager runs the availability check and the insert as one
// serializable transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface the use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
