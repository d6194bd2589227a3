package update_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmily/ClinicReservationService/internal/api/middleware"
	"github.com/petmily/ClinicReservationService/internal/domain"
	userClient "github.com/petmily/ClinicReservationService/internal/integrations/userservice"
	transitionStatus "github.com/petmily/ClinicReservationService/internal/usecase/transition_status"
)

type fakeUseCase struct {
	result *domain.Reservation
	err    error
	got    *transitionStatus.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *transitionStatus.Request) (*domain.Reservation, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeUserClient struct {
	user *userClient.User
}

func (f *fakeUserClient) GetUser(_ context.Context, _ int64) (*userClient.User, error) {
	return f.user, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(uc *fakeUseCase, caller *userClient.User) *mux.Router {
	identity := middleware.NewIdentity(&fakeUserClient{user: caller}, nopLogger{})
	handler := NewHandler(uc, nopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(identity.Middleware)
	protected.HandleFunc("/reservations/{reservationId}/status", handler.Handle).Methods(http.MethodPatch)
	return r
}

func patchStatus(router *mux.Router, path, body, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body))
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func staffUser() *userClient.User {
	return &userClient.User{ID: 100, Name: "Dr. Han", Role: "staff"}
}

func TestHandle_Approve(t *testing.T) {
	uc := &fakeUseCase{result: &domain.Reservation{
		ID:        42,
		UserID:    7,
		PetID:     3,
		StartTime: "09:00",
		CareType:  domain.CareGeneral,
		Status:    domain.StatusApproved,
	}}
	router := newRouter(uc, staffUser())

	rec := patchStatus(router, "/api/v1/reservations/42/status", `{"status":"APPROVED"}`, "100")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"APPROVED"`)

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(42), uc.got.ReservationID)
	assert.Equal(t, domain.StatusApproved, uc.got.NewStatus)
	assert.Equal(t, int64(100), uc.got.Actor.UserID)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "invalid status", err: transitionStatus.ErrInvalidInput, wantCode: http.StatusBadRequest},
		{name: "not staff", err: transitionStatus.ErrAccessDenied, wantCode: http.StatusForbidden},
		{name: "unknown reservation", err: transitionStatus.ErrReservationNotFound, wantCode: http.StatusNotFound},
		{name: "already finalized", err: transitionStatus.ErrInvalidTransition, wantCode: http.StatusConflict},
		{name: "store down", err: transitionStatus.ErrStoreUnavailable, wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(&fakeUseCase{err: tt.err}, staffUser())
			rec := patchStatus(router, "/api/v1/reservations/42/status", `{"status":"APPROVED"}`, "100")
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandle_BadRequests(t *testing.T) {
	router := newRouter(&fakeUseCase{}, staffUser())

	t.Run("non-numeric id", func(t *testing.T) {
		rec := patchStatus(router, "/api/v1/reservations/abc/status", `{"status":"APPROVED"}`, "100")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := patchStatus(router, "/api/v1/reservations/42/status", `{"status":`, "100")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown field", func(t *testing.T) {
		rec := patchStatus(router, "/api/v1/reservations/42/status", `{"state":"APPROVED"}`, "100")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandle_MissingIdentity(t *testing.T) {
	router := newRouter(&fakeUseCase{}, staffUser())

	rec := patchStatus(router, "/api/v1/reservations/42/status", `{"status":"APPROVED"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
