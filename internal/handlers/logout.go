package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/daily-diet/internal/logger"
)

//go:generate mockgen -source=logout.go -destination=logout_mock.go -package=handlers

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, userID uuid.UUID) error
}

// NewLogoutHandler returns an HTTP handler that ends the caller's session.
// @Summary User logout
// @Description Invalidates the session bound to the sessionId cookie and clears the cookie
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Logged out"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /logout [post]
func NewLogoutHandler(svc Logouter, cookies SessionCookies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		if err := svc.Logout(r.Context(), identity.ID); err != nil {
			logger.Log.Errorw("logout failed", "userID", identity.ID, "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		cookies.ClearCookie(w)
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out"})
	}
}
