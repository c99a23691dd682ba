package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/daily-diet/internal/logger"
	"github.com/sbilibin2017/daily-diet/internal/middlewares"
	"github.com/sbilibin2017/daily-diet/internal/models"
	"github.com/sbilibin2017/daily-diet/internal/services"
	"github.com/sbilibin2017/daily-diet/internal/validation"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`

	// Per-field validation messages, keyed by JSON field name
	Fields map[string]string `json:"fields,omitempty"`
}

// MessageResponse represents a plain success response
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	Message string `json:"message"`
}

// UserResponse wraps the authenticated identity
// swagger:model UserResponse
type UserResponse struct {
	User *models.Identity `json:"user"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps service errors onto HTTP responses.
// Unknown errors are logged and never leak to the client.
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  verr.Error(),
			Fields: verr.FieldMap(),
		})
	case errors.Is(err, services.ErrEmailAlreadyExists),
		errors.Is(err, services.ErrNameAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrUserDoesNotExist),
		errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, services.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, services.ErrMealNotFound):
		writeError(w, http.StatusNotFound, "Meal not found")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// requireIdentity returns the identity resolved by the auth middleware,
// answering 401 itself when there is none.
func requireIdentity(w http.ResponseWriter, r *http.Request) (*models.Identity, bool) {
	identity := middlewares.GetIdentityFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	return identity, true
}
