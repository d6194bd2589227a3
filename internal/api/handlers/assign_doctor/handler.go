package assign_doctor

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/petmily/ClinicReservationService/internal/api/handlers"
	"github.com/petmily/ClinicReservationService/internal/api/middleware"
	assignDoctor "github.com/petmily/ClinicReservationService/internal/usecase/assign_doctor"
)

const (
	msgInvalidReservationID = "invalid reservation id"
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDoctorID      = "invalid doctor id"
	msgMissingIdentity      = "missing request identity"
	msgAccessDenied         = "clinic staff role required"
	msgReservationNotFound  = "reservation not found"
	msgAlreadyRejected      = "cannot assign a doctor to a rejected reservation"
	msgDoctorNotFound       = "doctor not found"
	msgDoctorOffDuty        = "doctor is not on duty"
	msgStoreUnavailable     = "reservation store temporarily unavailable"
	msgDirectoryUnavailable = "staff directory temporarily unavailable"
)

// AssignDoctorRequest is the HTTP request body
type AssignDoctorRequest struct {
	DoctorID int64 `json:"doctorId"`
}

type Handler struct {
	useCase AssignDoctorUseCase
	logger  Logger
}

func NewHandler(useCase AssignDoctorUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/doctor
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scope, ok := middleware.ScopeFromContext(r.Context())
	if !ok {
		h.logger.Error("PATCH /reservations/{id}/doctor - No viewer scope on request context")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("PATCH /reservations/{id}/doctor - Invalid reservation id: %s", mux.Vars(r)["reservationId"])
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req AssignDoctorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/doctor - Invalid request body: reservation_id=%d, error=%v",
			reservationID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.DoctorID <= 0 {
		h.logger.Warn("PATCH /reservations/{id}/doctor - Invalid doctor id: reservation_id=%d, doctor_id=%d",
			reservationID, req.DoctorID)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &assignDoctor.Request{
		ReservationID: reservationID,
		DoctorID:      req.DoctorID,
		Actor:         scope,
	})
	if err != nil {
		switch {
		case errors.Is(err, assignDoctor.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/doctor - Invalid input: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidDoctorID)

		case errors.Is(err, assignDoctor.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{id}/doctor - Access denied: reservation_id=%d, user_id=%d, role=%s",
				reservationID, scope.UserID, scope.Role)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, assignDoctor.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/doctor - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, assignDoctor.ErrAlreadyRejected):
			h.logger.Warn("PATCH /reservations/{id}/doctor - Reservation already rejected: reservation_id=%d",
				reservationID)
			handlers.RespondConflict(w, msgAlreadyRejected)

		case errors.Is(err, assignDoctor.ErrDoctorNotFound):
			h.logger.Warn("PATCH /reservations/{id}/doctor - Doctor not found: reservation_id=%d, doctor_id=%d",
				reservationID, req.DoctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, assignDoctor.ErrDoctorOffDuty):
			h.logger.Warn("PATCH /reservations/{id}/doctor - Doctor off duty: reservation_id=%d, doctor_id=%d",
				reservationID, req.DoctorID)
			handlers.RespondConflict(w, msgDoctorOffDuty)

		case errors.Is(err, assignDoctor.ErrStoreUnavailable):
			h.logger.Error("PATCH /reservations/{id}/doctor - Store unavailable: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		case errors.Is(err, assignDoctor.ErrDirectoryUnavailable):
			h.logger.Error("PATCH /reservations/{id}/doctor - Staff directory unavailable: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondServiceUnavailable(w, msgDirectoryUnavailable)

		default:
			h.logger.Error("PATCH /reservations/{id}/doctor - Failed to assign doctor: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/doctor - Doctor assigned: reservation_id=%d, doctor_id=%d, by_user_id=%d",
		reservationID, req.DoctorID, scope.UserID)
	handlers.RespondJSON(w, http.StatusOK, handlers.ViewFromDomain(result))
}
