package transition_status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/petmily/ClinicReservationService/internal/domain"
	reservationRepo "github.com/petmily/ClinicReservationService/internal/infra/storage/reservation"
	"github.com/petmily/ClinicReservationService/internal/integrations/notifyservice"
)

// Request moves a reservation to a terminal status
type Request struct {
	ReservationID int64
	NewStatus     domain.ReservationStatus // APPROVED | REJECTED
	Actor         domain.ViewerScope       // must be staff or admin
}

// UseCase owns the PENDING -> APPROVED/REJECTED transition. The endpoint is
// idempotent: re-sending the status a reservation already has succeeds
// without touching the record, so callers can safely retry after a lost
// response instead of guessing.
type UseCase struct {
	reservationRepo ReservationRepository
	petClient       PetServiceClient
	notifyClient    NotifyServiceClient
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase creates the status transition use case
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

// Execute performs the transition. Rejection releases the slot for
// rebooking; approval keeps it occupied.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Reservation, error) {
	uc.logger.Info("TransitionStatus: reservation=%d, newStatus=%s, actor=%d",
		req.ReservationID, req.NewStatus, req.Actor.UserID)

	if req.ReservationID <= 0 {
		return nil, fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	if req.NewStatus != domain.StatusApproved && req.NewStatus != domain.StatusRejected {
		return nil, fmt.Errorf("%w: target status must be APPROVED or REJECTED, got %q",
			ErrInvalidInput, req.NewStatus)
	}

	if !req.Actor.Role.IsClinicStaff() {
		uc.logger.Warn("TransitionStatus: actor=%d with role=%s denied", req.Actor.UserID, req.Actor.Role)
		return nil, ErrAccessDenied
	}

	var result *domain.Reservation
	var noop bool

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("TransitionStatus: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("TransitionStatus: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}

		// Idempotent repeat: record already in the requested state
		if res.Status == req.NewStatus {
			uc.logger.Info("TransitionStatus: reservation id=%d already %s, no-op",
				req.ReservationID, req.NewStatus)
			result = res
			noop = true
			return nil
		}

		if !res.CanTransitionTo(req.NewStatus) {
			uc.logger.Warn("TransitionStatus: reservation id=%d is %s, cannot become %s",
				req.ReservationID, res.Status, req.NewStatus)
			return ErrInvalidTransition
		}

		if err := uc.reservationRepo.UpdateStatus(txCtx, req.ReservationID, req.NewStatus); err != nil {
			uc.logger.Error("TransitionStatus: failed to update reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}

		res.Status = req.NewStatus
		res.UpdatedAt = time.Now()
		result = res
		return nil
	})

	if err != nil {
		return nil, err
	}

	if noop {
		return result, nil
	}

	uc.logger.Info("TransitionStatus: reservation id=%d is now %s", req.ReservationID, req.NewStatus)

	uc.publishTransition(ctx, result)

	return result, nil
}

func (uc *UseCase) publishTransition(ctx context.Context, res *domain.Reservation) {
	kind := notifyservice.KindApproved
	if res.Status == domain.StatusRejected {
		kind = notifyservice.KindRejected
	}

	petName := ""
	if pet, err := uc.petClient.GetPet(ctx, res.PetID); err == nil {
		petName = pet.Name
	} else {
		uc.logger.Warn("TransitionStatus: failed to resolve pet id=%d for notification: %v", res.PetID, err)
	}

	event := notifyservice.Event{
		Kind:          kind,
		ReservationID: res.ID,
		UserID:        res.UserID,
		Date:          res.ReservationDate.Format(domain.DateFormat),
		StartTime:     res.StartTime.String(),
		PetName:       petName,
	}

	if err := uc.notifyClient.Publish(ctx, event); err != nil {
		uc.logger.Error("TransitionStatus: failed to publish %s event for reservation id=%d: %v",
			kind, res.ID, err)
	}
}
