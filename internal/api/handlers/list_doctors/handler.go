package list_doctors

import (
	"errors"
	"net/http"

	"github.com/petmily/ClinicReservationService/internal/api/handlers"
	"github.com/petmily/ClinicReservationService/internal/api/middleware"
	"github.com/petmily/ClinicReservationService/internal/service/reservations"
)

const (
	msgMissingIdentity      = "missing request identity"
	msgAccessDenied         = "clinic staff role required"
	msgDirectoryUnavailable = "staff directory temporarily unavailable"
)

// DoctorView is one assignable doctor on the wire
type DoctorView struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	OnDuty bool   `json:"onDuty"`
}

// DoctorListResponse lists doctors currently accepting assignments
type DoctorListResponse struct {
	Doctors []DoctorView `json:"doctors"`
	Total   int          `json:"total"`
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

// Handle GET /api/v1/doctors/on-duty
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scope, ok := middleware.ScopeFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /doctors/on-duty - No viewer scope on request context")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	result, err := h.service.ListAssignableDoctors(r.Context(), scope)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /doctors/on-duty - Access denied: user_id=%d, role=%s", scope.UserID, scope.Role)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservations.ErrDirectoryUnavailable):
			h.logger.Error("GET /doctors/on-duty - Staff directory unavailable: error=%v", err)
			handlers.RespondServiceUnavailable(w, msgDirectoryUnavailable)

		default:
			h.logger.Error("GET /doctors/on-duty - Failed to list doctors: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	doctors := make([]DoctorView, len(result))
	for i, doc := range result {
		doctors[i] = DoctorView{
			ID:     doc.ID,
			Name:   doc.Name,
			OnDuty: doc.OnDuty,
		}
	}

	handlers.RespondJSON(w, http.StatusOK, &DoctorListResponse{
		Doctors: doctors,
		Total:   len(doctors),
	})
}
