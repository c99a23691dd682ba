package handlers

import "net/http"

// NewDashboardHandler returns the identity bound to the session cookie.
// @Summary Current user
// @Description Returns the user resolved from the sessionId cookie
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.UserResponse "Authenticated user"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /dashboard [get]
func NewDashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, UserResponse{User: identity})
	}
}
