package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/daily-diet/internal/logger"
	"github.com/sbilibin2017/daily-diet/internal/models"
	"github.com/sbilibin2017/daily-diet/internal/services"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener extracts the session token carried by a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// SessionResolver maps a session token to the identity holding it.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*models.Identity, error)
}

// AuthMiddleware resolves the session cookie into an identity and stores it
// in the request context. Requests without a live session stop here with 401.
func AuthMiddleware(tokener Tokener, resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			identity, err := resolver.Resolve(ctx, token)
			if err != nil {
				if errors.Is(err, services.ErrUnauthenticated) {
					logger.Log.Warnw("authorization failed", "err", err)
					writeError(w, http.StatusUnauthorized, "Unauthorized")
					return
				}
				logger.Log.Errorw("failed to resolve session", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(SetIdentityToContext(ctx, identity)))
		})
	}
}

// SetIdentityToContext stores the authenticated identity in the context.
func SetIdentityToContext(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentityFromContext retrieves the authenticated identity. Returns nil if not present.
func GetIdentityFromContext(ctx context.Context) *models.Identity {
	identity, _ := ctx.Value(identityKey).(*models.Identity)
	return identity
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
