package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// CookieName is the cookie carrying the session token.
const CookieName = "sessionId"

// DefaultMaxAge is the lifetime of the session cookie.
const DefaultMaxAge = 7 * 24 * time.Hour

// ErrNoSession is returned when the request carries no session cookie.
var ErrNoSession = errors.New("session cookie missing")

// Manager issues opaque session tokens and moves them in and out of cookies.
type Manager struct {
	Secure bool          // Send the cookie over HTTPS only
	MaxAge time.Duration // Cookie expiration
}

// New creates a new Manager instance
func New(secure bool, maxAge time.Duration) *Manager {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &Manager{
		Secure: secure,
		MaxAge: maxAge,
	}
}

// Generate mints a new random session token.
func (m *Manager) Generate(ctx context.Context) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// GetTokenFromRequest extracts the session token from the request cookie
func (m *Manager) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", ErrNoSession
	}
	return c.Value, nil
}

// SetCookie writes the session token to the response.
func (m *Manager) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.MaxAge.Seconds()),
		Expires:  time.Now().Add(m.MaxAge),
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie on the client.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
