package assign_doctor

import (
	"context"

	"github.com/petmily/ClinicReservationService/internal/domain"
	"github.com/petmily/ClinicReservationService/internal/integrations/notifyservice"
	"github.com/petmily/ClinicReservationService/internal/integrations/petservice"
	"github.com/petmily/ClinicReservationService/internal/integrations/staffservice"
)

// ReservationRepository is the store surface the assignment path needs
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	AssignDoctor(ctx context.Context, id int64, doctorID int64) error
}

// StaffServiceClient is the doctor directory surface
type StaffServiceClient interface {
	GetDoctor(ctx context.Context, doctorID int64) (*staffservice.Doctor, error)
}

// PetServiceClient supplies the pet name for the notification payload
type PetServiceClient interface {
	GetPet(ctx context.Context, petID int64) (*petservice.Pet, error)
}

// NotifyServiceClient publishes reservation lifecycle events
type NotifyServiceClient interface {
	Publish(ctx context.Context, event notifyservice.Event) error
}

// TransactionManager scopes the read-check-write to one transaction
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface the use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
