package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID    uuid.UUID `json:"id" db:"id"`                 // Primary key
	Name      string    `json:"name" db:"name"`             // Unique user name
	Email     string    `json:"email" db:"email"`           // Unique user email
	Password  string    `json:"-" db:"password"`            // Bcrypt hash, never serialized
	SessionID *string   `json:"-" db:"session_id"`          // Active session token, nil when logged out
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// Identity is the sanitized view of a user attached to an authenticated request.
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// Identity returns the sanitized identity of the user.
func (u *UserDB) Identity() *Identity {
	return &Identity{
		ID:    u.UserID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// RegisterCredentials holds the fields accepted by registration.
type RegisterCredentials struct {
	Name     string `json:"name" validate:"required,username"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginCredentials holds the fields accepted by login.
type LoginCredentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
