package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/petmily/ClinicReservationService/internal/api/handlers"
	"github.com/petmily/ClinicReservationService/internal/api/middleware"
	getCalendar "github.com/petmily/ClinicReservationService/internal/usecase/get_calendar"
)

const (
	msgInvalidYearMonth = "year and month query parameters must be valid integers"
	msgInvalidMonth     = "month must be between 1 and 12"
	msgMissingIdentity  = "missing request identity"
	msgStoreUnavailable = "reservation store temporarily unavailable"
)

// DayMarkerView is one calendar day on the wire
type DayMarkerView struct {
	Day            int  `json:"day"`
	HasReservation bool `json:"hasReservation"`
}

// CalendarResponse carries one marker per day of the requested month
type CalendarResponse struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Days  []DayMarkerView `json:"days"`
}

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar?year=2026&month=8
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scope, ok := middleware.ScopeFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /calendar - No viewer scope on request context")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	year, errYear := strconv.Atoi(r.URL.Query().Get("year"))
	month, errMonth := strconv.Atoi(r.URL.Query().Get("month"))
	if errYear != nil || errMonth != nil {
		h.logger.Warn("GET /calendar - Invalid year/month: year=%s, month=%s",
			r.URL.Query().Get("year"), r.URL.Query().Get("month"))
		handlers.RespondBadRequest(w, msgInvalidYearMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{
		Year:  year,
		Month: month,
		Scope: scope,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid input: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		case errors.Is(err, getCalendar.ErrStoreUnavailable):
			h.logger.Error("GET /calendar - Store unavailable: year=%d, month=%d, error=%v", year, month, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /calendar - Failed to build calendar: year=%d, month=%d, error=%v", year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	days := make([]DayMarkerView, len(result.Days))
	for i, marker := range result.Days {
		days[i] = DayMarkerView{
			Day:            marker.Day,
			HasReservation: marker.HasReservation,
		}
	}

	handlers.RespondJSON(w, http.StatusOK, &CalendarResponse{
		Year:  result.Year,
		Month: result.Month,
		Days:  days,
	})
}
