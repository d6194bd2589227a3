package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmily/ClinicReservationService/internal/domain"
	userClient "github.com/petmily/ClinicReservationService/internal/integrations/userservice"
)

type fakeUserClient struct {
	user *userClient.User
	err  error
}

func (f *fakeUserClient) GetUser(_ context.Context, _ int64) (*userClient.User, error) {
	return f.user, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func callThrough(t *testing.T, users *fakeUserClient, header string) (*httptest.ResponseRecorder, *domain.ViewerScope) {
	t.Helper()

	var captured *domain.ViewerScope
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if scope, ok := ScopeFromContext(r.Context()); ok {
			captured = &scope
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/1", nil)
	if header != "" {
		req.Header.Set("X-User-ID", header)
	}

	rec := httptest.NewRecorder()
	NewIdentity(users, nopLogger{}).Middleware(next).ServeHTTP(rec, req)
	return rec, captured
}

func TestIdentity_ValidUser(t *testing.T) {
	users := &fakeUserClient{user: &userClient.User{ID: 7, Name: "Jiwoo", Role: "owner"}}

	rec, scope := callThrough(t, users, "7")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, scope)
	assert.Equal(t, int64(7), scope.UserID)
	assert.Equal(t, domain.RoleOwner, scope.Role)
}

func TestIdentity_StaffRole(t *testing.T) {
	users := &fakeUserClient{user: &userClient.User{ID: 100, Name: "Dr. Han", Role: "staff"}}

	rec, scope := callThrough(t, users, "100")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, scope)
	assert.True(t, scope.Role.IsClinicStaff())
}

func TestIdentity_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		users    *fakeUserClient
		wantCode int
	}{
		{
			name:     "missing header",
			header:   "",
			users:    &fakeUserClient{},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "non-numeric header",
			header:   "abc",
			users:    &fakeUserClient{},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "non-positive id",
			header:   "0",
			users:    &fakeUserClient{},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "unknown user",
			header:   "7",
			users:    &fakeUserClient{err: userClient.ErrUserNotFound},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "directory down",
			header:   "7",
			users:    &fakeUserClient{err: userClient.ErrInternal},
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, scope := callThrough(t, tt.users, tt.header)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Nil(t, scope, "handler must not run without identity")
		})
	}
}
