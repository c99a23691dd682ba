package repositories

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/daily-diet/internal/logger"
	"github.com/sbilibin2017/daily-diet/internal/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var mealColumns = []string{"id", "name", "description", "hour", "date", "is_on_diet", "created_at", "user_id"}

// MealReadRepository handles owner-scoped meal reads
type MealReadRepository struct {
	db *sqlx.DB
}

func NewMealReadRepository(db *sqlx.DB) *MealReadRepository {
	return &MealReadRepository{db: db}
}

// ListByUserID returns every meal owned by userID in storage order.
func (r *MealReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.MealDB, error) {
	query, args, err := psql.Select(mealColumns...).
		From("meals").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	meals := []models.MealDB{}
	err = r.db.SelectContext(ctx, &meals, query, args...)

	logger.Log.Infow(
		"query", query,
		"args", args,
		"result", len(meals),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return meals, nil
}

// GetByID returns the meal only when it is owned by userID, otherwise nil.
func (r *MealReadRepository) GetByID(ctx context.Context, userID, mealID uuid.UUID) (*models.MealDB, error) {
	query, args, err := psql.Select(mealColumns...).
		From("meals").
		Where(sq.Eq{"id": mealID, "user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	var meal models.MealDB
	err = r.db.GetContext(ctx, &meal, query, args...)

	found := err == nil
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
	}

	logger.Log.Infow(
		"query", query,
		"args", args,
		"result", found,
		"error", err,
	)

	if err != nil || !found {
		return nil, err
	}
	return &meal, nil
}

// MealWriteRepository handles owner-scoped meal writes
type MealWriteRepository struct {
	db *sqlx.DB
}

func NewMealWriteRepository(db *sqlx.DB) *MealWriteRepository {
	return &MealWriteRepository{db: db}
}

// Save inserts a new meal row.
func (r *MealWriteRepository) Save(ctx context.Context, meal models.MealDB) error {
	query, args, err := psql.Insert("meals").
		Columns(mealColumns...).
		Values(meal.MealID, meal.Name, meal.Description, meal.Hour, meal.Date, meal.IsOnDiet, meal.CreatedAt, meal.UserID).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.exec(ctx, query, args)
	return err
}

// Update replaces the mutable fields of the meal. The id and owner filter are
// evaluated in the same statement; the affected row count is returned.
func (r *MealWriteRepository) Update(ctx context.Context, meal models.MealDB) (int64, error) {
	query, args, err := psql.Update("meals").
		SetMap(map[string]any{
			"name":        meal.Name,
			"description": meal.Description,
			"hour":        meal.Hour,
			"date":        meal.Date,
			"is_on_diet":  meal.IsOnDiet,
		}).
		Where(sq.Eq{"id": meal.MealID, "user_id": meal.UserID}).
		ToSql()
	if err != nil {
		return 0, err
	}

	return r.exec(ctx, query, args)
}

// Delete removes the meal only if it is owned by userID and returns the affected row count.
func (r *MealWriteRepository) Delete(ctx context.Context, userID, mealID uuid.UUID) (int64, error) {
	query, args, err := psql.Delete("meals").
		Where(sq.Eq{"id": mealID, "user_id": userID}).
		ToSql()
	if err != nil {
		return 0, err
	}

	return r.exec(ctx, query, args)
}

func (r *MealWriteRepository) exec(ctx context.Context, query string, args []any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
