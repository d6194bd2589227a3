package get_day_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/petmily/ClinicReservationService/internal/api/handlers"
	"github.com/petmily/ClinicReservationService/internal/api/middleware"
	"github.com/petmily/ClinicReservationService/internal/domain"
	"github.com/petmily/ClinicReservationService/internal/service/reservations"
)

const (
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgMissingIdentity  = "missing request identity"
	msgAccessDenied     = "clinic staff role required"
	msgStoreUnavailable = "reservation store temporarily unavailable"
)

// DayReservationsResponse is the wire shape of one day's schedule
type DayReservationsResponse struct {
	Date         string                      `json:"date"`
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

// Handle GET /api/v1/reservations/date/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scope, ok := middleware.ScopeFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /reservations/date/{date} - No viewer scope on request context")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	dateStr := mux.Vars(r)["date"]
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /reservations/date/{date} - Invalid date: date=%s, error=%v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetByDate(r.Context(), date, scope)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /reservations/date/{date} - Access denied: date=%s, user_id=%d, role=%s",
				dateStr, scope.UserID, scope.Role)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservations.ErrStoreUnavailable):
			h.logger.Error("GET /reservations/date/{date} - Store unavailable: date=%s, error=%v", dateStr, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /reservations/date/{date} - Failed to list reservations: date=%s, error=%v",
				dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &DayReservationsResponse{
		Date:         dateStr,
		Reservations: handlers.ViewListFromService(result),
		Total:        result.Total,
	})
}
