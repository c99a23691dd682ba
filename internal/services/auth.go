package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/daily-diet/internal/logger"
	"github.com/sbilibin2017/daily-diet/internal/models"
	"github.com/sbilibin2017/daily-diet/internal/repositories"
	"github.com/sbilibin2017/daily-diet/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// Error variables
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrNameAlreadyExists  = errors.New("name already exists")
	ErrUserDoesNotExist   = errors.New("email does not exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// PasswordCost is the bcrypt cost used for new password hashes.
const PasswordCost = 10

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByName(ctx context.Context, name string) (*models.UserDB, error)
	GetBySessionID(ctx context.Context, sessionID string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) error
	SetSessionID(ctx context.Context, userID uuid.UUID, sessionID *string) error
}

// TokenGenerator mints opaque session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// AuthService handles registration, login, logout and session resolution.
type AuthService struct {
	reader    UserReader
	writer    UserWriter
	tokens    TokenGenerator
	validator *validation.Validator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenGenerator) *AuthService {
	return &AuthService{
		reader:    reader,
		writer:    writer,
		tokens:    tokens,
		validator: validation.New(),
	}
}

// Register creates a new user and returns the session token bound to it.
// presentedToken is the token already carried by the caller, if any.
func (svc *AuthService) Register(ctx context.Context, name, email, password, presentedToken string) (string, error) {
	creds := models.RegisterCredentials{Name: name, Email: email, Password: password}
	if err := svc.validator.Struct(creds); err != nil {
		logger.Log.Warnw("invalid registration", "err", err)
		return "", err
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return "", err
	}
	if existing != nil {
		logger.Log.Warnw("email already exists", "email", email)
		return "", ErrEmailAlreadyExists
	}

	existing, err = svc.reader.GetByName(ctx, name)
	if err != nil {
		logger.Log.Errorw("failed to check name", "err", err)
		return "", err
	}
	if existing != nil {
		logger.Log.Warnw("name already exists", "name", name)
		return "", ErrNameAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}

	token, err := svc.sessionToken(ctx, presentedToken, uuid.Nil)
	if err != nil {
		return "", err
	}

	user := models.UserDB{
		UserID:    uuid.New(),
		Name:      name,
		Email:     email,
		Password:  string(hashedPassword),
		SessionID: &token,
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return "", conflictError(err)
	}

	return token, nil
}

// Login authenticates a user, binds a session token to it and returns the
// sanitized identity together with the token. Any session the user held
// before is replaced.
func (svc *AuthService) Login(ctx context.Context, email, password, presentedToken string) (*models.Identity, string, error) {
	creds := models.LoginCredentials{Email: email, Password: password}
	if err := svc.validator.Struct(creds); err != nil {
		logger.Log.Warnw("invalid login", "err", err)
		return nil, "", err
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Warnw("user does not exist", "email", email)
		return nil, "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.sessionToken(ctx, presentedToken, user.UserID)
	if err != nil {
		return nil, "", err
	}

	if err := svc.writer.SetSessionID(ctx, user.UserID, &token); err != nil {
		logger.Log.Errorw("failed to store session", "userID", user.UserID, "err", err)
		return nil, "", err
	}

	return user.Identity(), token, nil
}

// Logout unbinds the session token from the user so it can never resolve again.
func (svc *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := svc.writer.SetSessionID(ctx, userID, nil); err != nil {
		logger.Log.Errorw("failed to clear session", "userID", userID, "err", err)
		return err
	}
	return nil
}

// Resolve maps a session token to the identity of the user holding it.
func (svc *AuthService) Resolve(ctx context.Context, token string) (*models.Identity, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	user, err := svc.reader.GetBySessionID(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to resolve session", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}

	return user.Identity(), nil
}

// sessionToken reuses the presented token unless it already belongs to
// another user, in which case a fresh one is minted.
func (svc *AuthService) sessionToken(ctx context.Context, presented string, userID uuid.UUID) (string, error) {
	if presented != "" {
		owner, err := svc.reader.GetBySessionID(ctx, presented)
		if err != nil {
			logger.Log.Errorw("failed to look up presented session", "err", err)
			return "", err
		}
		if owner == nil || owner.UserID == userID {
			return presented, nil
		}
	}

	token, err := svc.tokens.Generate(ctx)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return "", err
	}
	return token, nil
}

// conflictError maps a unique violation raised by a concurrent registration
// onto the matching conflict error.
func conflictError(err error) error {
	var uv *repositories.ErrUniqueViolation
	if !errors.As(err, &uv) {
		return err
	}
	switch uv.Constraint {
	case repositories.UsersEmailConstraint:
		return ErrEmailAlreadyExists
	case repositories.UsersNameConstraint:
		return ErrNameAlreadyExists
	default:
		return err
	}
}
