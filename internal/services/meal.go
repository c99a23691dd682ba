package services

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/daily-diet/internal/logger"
	"github.com/sbilibin2017/daily-diet/internal/models"
	"github.com/sbilibin2017/daily-diet/internal/validation"
)

//go:generate mockgen -source=meal.go -destination=meal_mock.go -package=services

// ErrMealNotFound is returned when a meal does not exist or belongs to another user.
// Callers cannot tell the two cases apart.
var ErrMealNotFound = errors.New("meal not found")

// MealReader defines owner-scoped meal reads.
type MealReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.MealDB, error)
	GetByID(ctx context.Context, userID, mealID uuid.UUID) (*models.MealDB, error)
}

// MealWriter defines owner-scoped meal writes.
type MealWriter interface {
	Save(ctx context.Context, meal models.MealDB) error
	Update(ctx context.Context, meal models.MealDB) (int64, error)
	Delete(ctx context.Context, userID, mealID uuid.UUID) (int64, error)
}

// SummaryCache caches diet summaries per user.
type SummaryCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.DietSummary, error)
	Set(ctx context.Context, userID uuid.UUID, summary *models.DietSummary) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// EventPublisher publishes meal change events.
type EventPublisher interface {
	Publish(ctx context.Context, event models.MealEvent) error
}

// MealService handles meal CRUD for a resolved owner.
type MealService struct {
	reader    MealReader
	writer    MealWriter
	cache     SummaryCache
	publisher EventPublisher
	validator *validation.Validator
	now       func() time.Time
}

// NewMealService creates a new MealService. cache and publisher may be nil.
func NewMealService(
	reader MealReader,
	writer MealWriter,
	cache SummaryCache,
	publisher EventPublisher,
) *MealService {
	return &MealService{
		reader:    reader,
		writer:    writer,
		cache:     cache,
		publisher: publisher,
		validator: validation.New(),
		now:       time.Now,
	}
}

// Create validates the input and stores a new meal owned by userID.
func (s *MealService) Create(ctx context.Context, userID uuid.UUID, in models.MealInput) (*models.MealDB, error) {
	if err := s.validator.Struct(in); err != nil {
		logger.Log.Warnw("invalid meal", "userID", userID, "error", err)
		return nil, err
	}

	meal := models.MealDB{
		MealID:      uuid.New(),
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		Hour:        in.MealHour,
		Date:        in.MealDate,
		IsOnDiet:    *in.IsOnDiet,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.writer.Save(ctx, meal); err != nil {
		logger.Log.Errorw("failed to save meal", "userID", userID, "error", err)
		return nil, err
	}

	s.changed(ctx, meal, models.MealCreated)
	return &meal, nil
}

// List returns all meals owned by userID.
func (s *MealService) List(ctx context.Context, userID uuid.UUID) ([]models.MealDB, error) {
	meals, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list meals", "userID", userID, "error", err)
		return nil, err
	}
	return meals, nil
}

// Get returns a single meal owned by userID.
func (s *MealService) Get(ctx context.Context, userID, mealID uuid.UUID) (*models.MealDB, error) {
	meal, err := s.reader.GetByID(ctx, userID, mealID)
	if err != nil {
		logger.Log.Errorw("failed to get meal", "userID", userID, "mealID", mealID, "error", err)
		return nil, err
	}
	if meal == nil {
		return nil, ErrMealNotFound
	}
	return meal, nil
}

// Update replaces the mutable fields of a meal owned by userID.
func (s *MealService) Update(ctx context.Context, userID, mealID uuid.UUID, in models.MealInput) error {
	if err := s.validator.Struct(in); err != nil {
		logger.Log.Warnw("invalid meal", "userID", userID, "mealID", mealID, "error", err)
		return err
	}

	meal := models.MealDB{
		MealID:      mealID,
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		Hour:        in.MealHour,
		Date:        in.MealDate,
		IsOnDiet:    *in.IsOnDiet,
	}

	n, err := s.writer.Update(ctx, meal)
	if err != nil {
		logger.Log.Errorw("failed to update meal", "userID", userID, "mealID", mealID, "error", err)
		return err
	}
	if n == 0 {
		logger.Log.Warnw("meal not found for update", "userID", userID, "mealID", mealID)
		return ErrMealNotFound
	}

	s.changed(ctx, meal, models.MealUpdated)
	return nil
}

// Delete removes a meal owned by userID.
func (s *MealService) Delete(ctx context.Context, userID, mealID uuid.UUID) error {
	n, err := s.writer.Delete(ctx, userID, mealID)
	if err != nil {
		logger.Log.Errorw("failed to delete meal", "userID", userID, "mealID", mealID, "error", err)
		return err
	}
	if n == 0 {
		logger.Log.Warnw("meal not found for delete", "userID", userID, "mealID", mealID)
		return ErrMealNotFound
	}

	s.changed(ctx, models.MealDB{MealID: mealID, UserID: userID}, models.MealDeleted)
	return nil
}

// Summary returns the diet compliance of userID, served from cache when possible.
func (s *MealService) Summary(ctx context.Context, userID uuid.UUID) (*models.DietSummary, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, userID)
		if err != nil {
			logger.Log.Warnw("summary cache read failed", "userID", userID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	meals, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list meals for summary", "userID", userID, "error", err)
		return nil, err
	}

	summary := Summarize(meals)

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, summary); err != nil {
			logger.Log.Warnw("summary cache write failed", "userID", userID, "error", err)
		}
	}

	return summary, nil
}

// Summarize computes the diet summary of a set of meals.
func Summarize(meals []models.MealDB) *models.DietSummary {
	summary := &models.DietSummary{Total: len(meals)}
	if len(meals) == 0 {
		return summary
	}

	ordered := make([]models.MealDB, len(meals))
	copy(ordered, meals)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i].EatenAt(), ordered[j].EatenAt()
		if !a.Equal(b) {
			return a.Before(b)
		}
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	streak := 0
	for _, m := range ordered {
		if m.IsOnDiet {
			summary.OnDiet++
			streak++
			if streak > summary.BestOnDietStreak {
				summary.BestOnDietStreak = streak
			}
		} else {
			summary.OffDiet++
			streak = 0
		}
	}

	pct := float64(summary.OnDiet) / float64(summary.Total) * 100
	summary.OnDietPercentage = math.Round(pct*100) / 100

	return summary
}

// changed invalidates the cached summary and publishes the change.
// Neither step can fail the request.
func (s *MealService) changed(ctx context.Context, meal models.MealDB, operation string) {
	if s.cache != nil {
		if err := s.cache.Delete(ctx, meal.UserID); err != nil {
			logger.Log.Warnw("failed to invalidate summary", "userID", meal.UserID, "error", err)
		}
	}

	if s.publisher == nil {
		logger.Log.Debugw("event publisher not configured, skipping", "mealID", meal.MealID, "operation", operation)
		return
	}

	event := models.MealEvent{
		EventID:   uuid.NewString(),
		Timestamp: s.now().Unix(),
		UserID:    meal.UserID.String(),
		MealID:    meal.MealID.String(),
		Operation: operation,
		IsOnDiet:  meal.IsOnDiet,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Log.Errorw("failed to publish meal event", "eventID", event.EventID, "operation", operation, "error", err)
		return
	}
	logger.Log.Infow("meal event published", "eventID", event.EventID, "operation", operation)
}
