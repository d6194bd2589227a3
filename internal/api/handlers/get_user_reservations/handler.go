package get_user_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/petmily/ClinicReservationService/internal/api/handlers"
	"github.com/petmily/ClinicReservationService/internal/api/middleware"
	"github.com/petmily/ClinicReservationService/internal/service/reservations"
)

const (
	msgInvalidUserID    = "invalid user id"
	msgInvalidStatus    = "invalid status filter"
	msgMissingIdentity  = "missing request identity"
	msgAccessDenied     = "cannot list another user's reservations"
	msgStoreUnavailable = "reservation store temporarily unavailable"
)

// UserReservationsResponse is the wire shape of one user's history
type UserReservationsResponse struct {
	UserID       int64                       `json:"userId"`
	Reservations []*handlers.ReservationView `json:"reservations"`
	Total        int                         `json:"total"`
}

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/user/{userId}?status=PENDING
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scope, ok := middleware.ScopeFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /reservations/user/{id} - No viewer scope on request context")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil || userID <= 0 {
		h.logger.Warn("GET /reservations/user/{id} - Invalid user id: %s", mux.Vars(r)["userId"])
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.service.GetByUser(r.Context(), userID, status, scope)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations/user/{id} - Invalid status filter: user_id=%d, status=%v",
				userID, status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /reservations/user/{id} - Access denied: target_user_id=%d, viewer_user_id=%d",
				userID, scope.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservations.ErrStoreUnavailable):
			h.logger.Error("GET /reservations/user/{id} - Store unavailable: user_id=%d, error=%v", userID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /reservations/user/{id} - Failed to list reservations: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &UserReservationsResponse{
		UserID:       userID,
		Reservations: handlers.ViewListFromService(result),
		Total:        result.Total,
	})
}
