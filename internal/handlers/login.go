package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/daily-diet/internal/models"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password, presentedToken string) (*models.Identity, string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// default: Login successful
	Message string           `json:"message"`
	User    *models.Identity `json:"user"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and set the sessionId cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Authenticated user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer, cookies SessionCookies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		presented, _ := cookies.GetTokenFromRequest(r.Context(), r)

		identity, token, err := svc.Login(r.Context(), req.Email, req.Password, presented)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		cookies.SetCookie(w, token)
		writeJSON(w, http.StatusOK, LoginResponse{
			Message: "Login successful",
			User:    identity,
		})
	}
}
