package handlers

import (
	"context"
	"encoding/json"
	"net/http"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, password, presentedToken string) (string, error)
}

// SessionCookies reads and writes the session cookie.
type SessionCookies interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	SetCookie(w http.ResponseWriter, token string)
	ClearCookie(w http.ResponseWriter)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Name: letters, digits, '_' and '-'
	// required: true
	// default: john_doe
	Name string `json:"name"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password, at least 6 characters
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique name and email and opens a session for it.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.MessageResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Name or email already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer, cookies SessionCookies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		presented, _ := cookies.GetTokenFromRequest(r.Context(), r)

		token, err := svc.Register(r.Context(), req.Name, req.Email, req.Password, presented)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		cookies.SetCookie(w, token)
		writeJSON(w, http.StatusCreated, MessageResponse{
			Message: "User registered successfully",
		})
	}
}
