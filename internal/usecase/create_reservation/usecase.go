package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/petmily/ClinicReservationService/internal/domain"
	reservationRepo "github.com/petmily/ClinicReservationService/internal/infra/storage/reservation"
	"github.com/petmily/ClinicReservationService/internal/integrations/notifyservice"
	petClient "github.com/petmily/ClinicReservationService/internal/integrations/petservice"
)

// UseCase creates a new reservation in PENDING state
type UseCase struct {
	reservationRepo ReservationRepository
	petClient       PetServiceClient
	notifyClient    NotifyServiceClient
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase creates the booking use case
func NewUseCase(
	reservationRepo ReservationRepository,
	petClient PetServiceClient,
	notifyClient NotifyServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		petClient:       petClient,
		notifyClient:    notifyClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute books a slot. The availability check and the insert run inside a
// single serializable transaction; two concurrent bookings of the same
// (date, time) cannot both win - the loser fails with ErrSlotTaken, either
// from the locked re-read or from the partial unique index underneath.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, pet=%d, date=%s, time=%s, care=%s",
		req.UserID, req.PetID, req.Date.Format(domain.DateFormat), req.StartTime, req.CareType)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// Ownership check against the pet directory
	pet, err := uc.petClient.GetPet(ctx, req.PetID)
	if err != nil {
		if errors.Is(err, petClient.ErrPetNotFound) {
			uc.logger.Warn("CreateReservation: pet id=%d not found", req.PetID)
			return nil, ErrPetNotFound
		}
		uc.logger.Error("CreateReservation: failed to get pet id=%d: %v", req.PetID, err)
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}

	if pet.OwnerID != req.UserID {
		uc.logger.Warn("CreateReservation: pet id=%d belongs to user=%d, not user=%d",
			req.PetID, pet.OwnerID, req.UserID)
		return nil, ErrPetNotOwned
	}

	var result *domain.Reservation

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Re-read the day's active reservations under lock
		filter := domain.ReservationsFilter{
			StartDate:  &req.Date,
			EndDate:    &req.Date,
			OnlyActive: true,
		}

		reservations, err := uc.reservationRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to read day reservations: %v", err)
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}

		if slotOccupied(reservations, req) {
			uc.logger.Warn("CreateReservation: slot %s on %s already taken",
				req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrSlotTaken
		}

		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			UserID:          req.UserID,
			PetID:           req.PetID,
			ReservationDate: req.Date,
			StartTime:       req.StartTime,
			CareType:        req.CareType,
			Status:          domain.StatusPending,
			Symptom:         req.Symptom,
		})
		if err != nil {
			// Unique index fired: a concurrent booking won the slot
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateReservation: lost slot %s on %s to a concurrent booking",
					req.StartTime, req.Date.Format(domain.DateFormat))
				return ErrSlotTaken
			}
			uc.logger.Error("CreateReservation: failed to insert reservation: %v", err)
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: created reservation id=%d", result.ID)

	// Best-effort notification, the reservation is already committed
	uc.publishCreated(ctx, result, pet.Name)

	return fromDomain(result), nil
}

func (uc *UseCase) publishCreated(ctx context.Context, res *domain.Reservation, petName string) {
	event := notifyservice.Event{
		Kind:          notifyservice.KindCreated,
		ReservationID: res.ID,
		UserID:        res.UserID,
		Date:          res.ReservationDate.Format(domain.DateFormat),
		StartTime:     res.StartTime.String(),
		PetName:       petName,
	}

	if err := uc.notifyClient.Publish(ctx, event); err != nil {
		uc.logger.Error("CreateReservation: failed to publish Created event for reservation id=%d: %v",
			res.ID, err)
	}
}
