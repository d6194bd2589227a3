package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/petmily/ClinicReservationService/internal/api/handlers"
	"github.com/petmily/ClinicReservationService/internal/domain"
	userClient "github.com/petmily/ClinicReservationService/internal/integrations/userservice"
)

const userIDHeader = "X-User-ID"

type scopeContextKey struct{}

// ScopeFromContext returns the viewer scope attached by the Identity
// middleware. The second return is false on routes outside the middleware.
func ScopeFromContext(ctx context.Context) (domain.ViewerScope, bool) {
	scope, ok := ctx.Value(scopeContextKey{}).(domain.ViewerScope)
	return scope, ok
}

// UserServiceClient resolves the caller's role
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userClient.User, error)
}

// Logger is the logging surface the middleware needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Identity turns the gateway-provided X-User-ID header into an explicit
// request-scoped viewer scope. The role comes from the user directory on
// every request; nothing ambient survives past the handler boundary.
type Identity struct {
	users  UserServiceClient
	logger Logger
}

func NewIdentity(users UserServiceClient, logger Logger) *Identity {
	return &Identity{users: users, logger: logger}
}

// Middleware rejects requests without a valid identity and stores the
// resolved scope in the request context.
func (i *Identity) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(userIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, "missing "+userIDHeader+" header")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "invalid "+userIDHeader+" header")
			return
		}

		user, err := i.users.GetUser(r.Context(), userID)
		if err != nil {
			if errors.Is(err, userClient.ErrUserNotFound) {
				i.logger.Warn("Identity: unknown user id=%d", userID)
				handlers.RespondUnauthorized(w, "unknown user")
				return
			}
			i.logger.Error("Identity: user directory lookup failed for id=%d: %v", userID, err)
			handlers.RespondServiceUnavailable(w, "user directory unavailable")
			return
		}

		scope := domain.ViewerScope{Role: domain.Role(user.Role), UserID: user.ID}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), scopeContextKey{}, scope)))
	})
}
