package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/daily-diet/internal/logger"
	"github.com/sbilibin2017/daily-diet/internal/models"
)

// Unique constraints of the users table, as named by Postgres.
const (
	UsersEmailConstraint   = "users_email_key"
	UsersNameConstraint    = "users_name_key"
	UsersSessionConstraint = "users_session_id_key"
)

// ErrUniqueViolation is returned when an insert or update collides with a unique constraint.
type ErrUniqueViolation struct {
	Constraint string
}

func (e *ErrUniqueViolation) Error() string {
	return "unique constraint violated: " + e.Constraint
}

// uniqueViolation converts a Postgres 23505 error into *ErrUniqueViolation.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return &ErrUniqueViolation{Constraint: pgErr.ConstraintName}
	}
	return err
}

// executor returns the request transaction if there is one, otherwise the pool.
func executor(ctx context.Context, db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

func oneLine(query string) string {
	return strings.Join(strings.Fields(query), " ")
}

func mask(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return "***"
}

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByEmail returns the user with the given email, or nil when there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, name, email, password, session_id, created_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`
	return r.getOne(ctx, query, email, email)
}

// GetByName returns the user with the given name, or nil when there is none.
func (r *UserReadRepository) GetByName(ctx context.Context, name string) (*models.UserDB, error) {
	const query = `
		SELECT id, name, email, password, session_id, created_at
		FROM users
		WHERE name = $1
		LIMIT 1
	`
	return r.getOne(ctx, query, name, name)
}

// GetBySessionID returns the user holding the session token, or nil when no user does.
func (r *UserReadRepository) GetBySessionID(ctx context.Context, sessionID string) (*models.UserDB, error) {
	const query = `
		SELECT id, name, email, password, session_id, created_at
		FROM users
		WHERE session_id = $1
		LIMIT 1
	`
	return r.getOne(ctx, query, sessionID, "***")
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any, loggedArg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, arg)

	found := err == nil
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
	}

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{loggedArg},
		"result", found,
		"error", err,
	)

	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user row.
func (r *UserWriteRepository) Save(ctx context.Context, user models.UserDB) error {
	const query = `
		INSERT INTO users (id, name, email, password, session_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query,
		user.UserID, user.Name, user.Email, user.Password, user.SessionID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{user.UserID, user.Name, user.Email, "***", mask(user.SessionID)},
		"result", rowsAffected,
		"error", err,
	)

	return uniqueViolation(err)
}

// SetSessionID binds a session token to the user. A nil token logs the user out.
func (r *UserWriteRepository) SetSessionID(ctx context.Context, userID uuid.UUID, sessionID *string) error {
	const query = `
		UPDATE users
		SET session_id = $2
		WHERE id = $1
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, sessionID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{userID, mask(sessionID)},
		"result", rowsAffected,
		"error", err,
	)

	return uniqueViolation(err)
}
