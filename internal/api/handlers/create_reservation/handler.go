package create_reservation

import (
	"errors"
	"net/http"

	"github.com/petmily/ClinicReservationService/internal/api/handlers"
	"github.com/petmily/ClinicReservationService/internal/api/middleware"
	createReservation "github.com/petmily/ClinicReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDateOrTime    = "invalid date or time, expected YYYY-MM-DD and HH:MM"
	msgInvalidInput         = "invalid reservation data"
	msgMissingIdentity      = "missing request identity"
	msgPetNotFound          = "pet not found"
	msgPetNotOwned          = "pet does not belong to the requesting user"
	msgSlotTaken            = "the requested slot is already reserved"
	msgStoreUnavailable     = "reservation store temporarily unavailable"
	msgDirectoryUnavailable = "pet directory temporarily unavailable"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scope, ok := middleware.ScopeFromContext(r.Context())
	if !ok {
		h.logger.Error("POST /reservations - No viewer scope on request context")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(scope.UserID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: user_id=%d, error=%v", scope.UserID, err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%d, error=%v", scope.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrPetNotFound):
			h.logger.Warn("POST /reservations - Pet not found: user_id=%d, pet_id=%d", scope.UserID, req.PetID)
			handlers.RespondNotFound(w, msgPetNotFound)

		case errors.Is(err, createReservation.ErrPetNotOwned):
			h.logger.Warn("POST /reservations - Pet not owned by user: user_id=%d, pet_id=%d", scope.UserID, req.PetID)
			handlers.RespondForbidden(w, msgPetNotOwned)

		case errors.Is(err, createReservation.ErrSlotTaken):
			h.logger.Warn("POST /reservations - Slot taken: user_id=%d, date=%s, start_time=%s",
				scope.UserID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createReservation.ErrStoreUnavailable):
			h.logger.Error("POST /reservations - Store unavailable: user_id=%d, error=%v", scope.UserID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		case errors.Is(err, createReservation.ErrDirectoryUnavailable):
			h.logger.Error("POST /reservations - Pet directory unavailable: user_id=%d, error=%v", scope.UserID, err)
			handlers.RespondServiceUnavailable(w, msgDirectoryUnavailable)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, error=%v", scope.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%d, user_id=%d, date=%s, start_time=%s",
		result.ID, scope.UserID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
