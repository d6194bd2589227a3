package assign_doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/petmily/ClinicReservationService/internal/domain"
	reservationRepo "github.com/petmily/ClinicReservationService/internal/infra/storage/reservation"
	"github.com/petmily/ClinicReservationService/internal/integrations/notifyservice"
	staffClient "github.com/petmily/ClinicReservationService/internal/integrations/staffservice"
)

// Request attaches a doctor to a reservation
type Request struct {
	ReservationID int64
	DoctorID      int64
	Actor         domain.ViewerScope // must be staff or admin
}

// UseCase attaches an on-duty doctor to a pending or approved reservation.
// Assignment is deliberately decoupled from approval so staff can triage a
// still-pending reservation without implicitly approving it.
type UseCase struct {
	reservationRepo ReservationRepository
	staffClient     StaffServiceClient
	petClient       PetServiceClient
	notifyClient    NotifyServiceClient
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase creates the doctor assignment use case
func NewUseCase(
	reservationRepo ReservationRepository,
	staffClient StaffServiceClient,
	petClient PetServiceClient,
	notifyClient NotifyServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		staffClient:     staffClient,
		petClient:       petClient,
		notifyClient:    notifyClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute assigns the doctor. Status is left untouched.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Reservation, error) {
	uc.logger.Info("AssignDoctor: reservation=%d, doctor=%d, actor=%d",
		req.ReservationID, req.DoctorID, req.Actor.UserID)

	if req.ReservationID <= 0 || req.DoctorID <= 0 {
		return nil, fmt.Errorf("%w: reservationID and doctorID must be positive", ErrInvalidInput)
	}

	if !req.Actor.Role.IsClinicStaff() {
		uc.logger.Warn("AssignDoctor: actor=%d with role=%s denied", req.Actor.UserID, req.Actor.Role)
		return nil, ErrAccessDenied
	}

	// On-duty status is checked at assignment time, not booking time
	doctor, err := uc.staffClient.GetDoctor(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, staffClient.ErrDoctorNotFound) {
			uc.logger.Warn("AssignDoctor: doctor id=%d not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("AssignDoctor: failed to get doctor id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}

	if !doctor.OnDuty {
		uc.logger.Warn("AssignDoctor: doctor id=%d is off duty", req.DoctorID)
		return nil, ErrDoctorOffDuty
	}

	var result *domain.Reservation

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("AssignDoctor: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("AssignDoctor: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}

		if !res.CanAssignDoctor() {
			uc.logger.Warn("AssignDoctor: reservation id=%d is %s, assignment refused",
				req.ReservationID, res.Status)
			return ErrAlreadyRejected
		}

		if err := uc.reservationRepo.AssignDoctor(txCtx, req.ReservationID, req.DoctorID); err != nil {
			uc.logger.Error("AssignDoctor: failed to update reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}

		res.DoctorID = &req.DoctorID
		result = res
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AssignDoctor: doctor id=%d assigned to reservation id=%d", req.DoctorID, req.ReservationID)

	uc.publishAssigned(ctx, result, doctor.Name)

	return result, nil
}

func (uc *UseCase) publishAssigned(ctx context.Context, res *domain.Reservation, doctorName string) {
	// Pet name is decoration for the notification; a directory hiccup
	// must not fail the assignment
	petName := ""
	if pet, err := uc.petClient.GetPet(ctx, res.PetID); err == nil {
		petName = pet.Name
	} else {
		uc.logger.Warn("AssignDoctor: failed to resolve pet id=%d for notification: %v", res.PetID, err)
	}

	event := notifyservice.Event{
		Kind:          notifyservice.KindDoctorAssigned,
		ReservationID: res.ID,
		UserID:        res.UserID,
		Date:          res.ReservationDate.Format(domain.DateFormat),
		StartTime:     res.StartTime.String(),
		PetName:       petName,
		DoctorName:    &doctorName,
	}

	if err := uc.notifyClient.Publish(ctx, event); err != nil {
		uc.logger.Error("AssignDoctor: failed to publish DoctorAssigned event for reservation id=%d: %v",
			res.ID, err)
	}
}
