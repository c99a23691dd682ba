package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/daily-diet/internal/models"
	"github.com/sbilibin2017/daily-diet/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func lunch() models.MealInput {
	return models.MealInput{
		Name:        "Lunch",
		Description: "Salad",
		MealHour:    "12:30",
		MealDate:    "01/01/2024",
		IsOnDiet:    boolPtr(true),
	}
}

func TestMealService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	fixed := time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockMealWriter(ctrl)
	cache := NewMockSummaryCache(ctrl)
	publisher := NewMockEventPublisher(ctrl)

	svc := NewMealService(nil, writer, cache, publisher)
	svc.now = func() time.Time { return fixed }

	writer.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, m models.MealDB) error {
		assert.Equal(t, userID, m.UserID)
		assert.NotEqual(t, uuid.Nil, m.MealID)
		assert.Equal(t, "12:30", m.Hour)
		assert.Equal(t, "01/01/2024", m.Date)
		assert.True(t, m.IsOnDiet)
		assert.Equal(t, fixed, m.CreatedAt)
		return nil
	})
	cache.EXPECT().Delete(ctx, userID).Return(nil)
	publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e models.MealEvent) error {
		assert.Equal(t, models.MealCreated, e.Operation)
		assert.Equal(t, userID.String(), e.UserID)
		assert.Equal(t, fixed.Unix(), e.Timestamp)
		return nil
	})

	meal, err := svc.Create(ctx, userID, lunch())
	require.NoError(t, err)
	assert.Equal(t, "Lunch", meal.Name)
}

func TestMealService_Create_Invalid(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No writer expectations: validation must fail before persistence.
	svc := NewMealService(nil, NewMockMealWriter(ctrl), nil, nil)

	tests := []struct {
		name   string
		mutate func(in *models.MealInput)
		field  string
	}{
		{name: "hour 25:00", mutate: func(in *models.MealInput) { in.MealHour = "25:00" }, field: "meal_hour"},
		{name: "iso date", mutate: func(in *models.MealInput) { in.MealDate = "2024-01-01" }, field: "meal_date"},
		{name: "empty name", mutate: func(in *models.MealInput) { in.Name = "" }, field: "name"},
		{name: "missing flag", mutate: func(in *models.MealInput) { in.IsOnDiet = nil }, field: "is_on_diet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := lunch()
			tt.mutate(&in)

			_, err := svc.Create(ctx, uuid.New(), in)
			var verr *validation.Error
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.FieldMap(), tt.field)

			err = svc.Update(ctx, uuid.New(), uuid.New(), in)
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.FieldMap(), tt.field)
		})
	}
}

func TestMealService_Create_SideEffectFailuresAreIgnored(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockMealWriter(ctrl)
	cache := NewMockSummaryCache(ctrl)
	publisher := NewMockEventPublisher(ctrl)

	svc := NewMealService(nil, writer, cache, publisher)

	writer.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	cache.EXPECT().Delete(ctx, userID).Return(errors.New("redis down"))
	publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("kafka down"))

	_, err := svc.Create(ctx, userID, lunch())
	assert.NoError(t, err)
}

func TestMealService_Create_SaveError(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockMealWriter(ctrl)
	svc := NewMealService(nil, writer, nil, nil)

	writer.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("db error"))

	_, err := svc.Create(ctx, uuid.New(), lunch())
	assert.EqualError(t, err, "db error")
}

func TestMealService_Update(t *testing.T) {
	ctx := context.Background()
	userID, mealID := uuid.New(), uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockMealWriter(ctrl)
	svc := NewMealService(nil, writer, nil, nil)

	t.Run("owned meal", func(t *testing.T) {
		writer.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, m models.MealDB) (int64, error) {
			assert.Equal(t, mealID, m.MealID)
			assert.Equal(t, userID, m.UserID)
			return 1, nil
		})
		assert.NoError(t, svc.Update(ctx, userID, mealID, lunch()))
	})

	t.Run("missing or not owned", func(t *testing.T) {
		writer.EXPECT().Update(ctx, gomock.Any()).Return(int64(0), nil)
		assert.ErrorIs(t, svc.Update(ctx, userID, mealID, lunch()), ErrMealNotFound)
	})

	t.Run("store error", func(t *testing.T) {
		writer.EXPECT().Update(ctx, gomock.Any()).Return(int64(0), errors.New("db error"))
		assert.EqualError(t, svc.Update(ctx, userID, mealID, lunch()), "db error")
	})
}

func TestMealService_Delete(t *testing.T) {
	ctx := context.Background()
	userID, mealID := uuid.New(), uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockMealWriter(ctrl)
	cache := NewMockSummaryCache(ctrl)
	svc := NewMealService(nil, writer, cache, nil)

	t.Run("owned meal", func(t *testing.T) {
		writer.EXPECT().Delete(ctx, userID, mealID).Return(int64(1), nil)
		cache.EXPECT().Delete(ctx, userID).Return(nil)
		assert.NoError(t, svc.Delete(ctx, userID, mealID))
	})

	t.Run("missing or not owned", func(t *testing.T) {
		writer.EXPECT().Delete(ctx, userID, mealID).Return(int64(0), nil)
		assert.ErrorIs(t, svc.Delete(ctx, userID, mealID), ErrMealNotFound)
	})

	t.Run("store error", func(t *testing.T) {
		writer.EXPECT().Delete(ctx, userID, mealID).Return(int64(0), errors.New("db error"))
		assert.EqualError(t, svc.Delete(ctx, userID, mealID), "db error")
	})
}

func TestMealService_ListAndGet(t *testing.T) {
	ctx := context.Background()
	userID, mealID := uuid.New(), uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockMealReader(ctrl)
	svc := NewMealService(reader, nil, nil, nil)

	meals := []models.MealDB{{MealID: mealID, UserID: userID, Name: "Lunch"}}
	reader.EXPECT().ListByUserID(ctx, userID).Return(meals, nil)

	got, err := svc.List(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, meals, got)

	reader.EXPECT().GetByID(ctx, userID, mealID).Return(&meals[0], nil)
	meal, err := svc.Get(ctx, userID, mealID)
	assert.NoError(t, err)
	assert.Equal(t, "Lunch", meal.Name)

	reader.EXPECT().GetByID(ctx, userID, mealID).Return(nil, nil)
	_, err = svc.Get(ctx, userID, mealID)
	assert.ErrorIs(t, err, ErrMealNotFound)

	reader.EXPECT().ListByUserID(ctx, userID).Return(nil, errors.New("db error"))
	_, err = svc.List(ctx, userID)
	assert.EqualError(t, err, "db error")
}

func TestMealService_Summary(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockMealReader(ctrl)
	cache := NewMockSummaryCache(ctrl)
	svc := NewMealService(reader, nil, cache, nil)

	t.Run("cache hit", func(t *testing.T) {
		cached := &models.DietSummary{Total: 2, OnDiet: 2, OnDietPercentage: 100, BestOnDietStreak: 2}
		cache.EXPECT().Get(ctx, userID).Return(cached, nil)

		got, err := svc.Summary(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, cached, got)
	})

	t.Run("cache miss computes and stores", func(t *testing.T) {
		cache.EXPECT().Get(ctx, userID).Return(nil, nil)
		reader.EXPECT().ListByUserID(ctx, userID).Return([]models.MealDB{
			{Date: "01/01/2024", Hour: "08:00", IsOnDiet: true},
			{Date: "01/01/2024", Hour: "12:00", IsOnDiet: false},
		}, nil)
		cache.EXPECT().Set(ctx, userID, gomock.Any()).Return(nil)

		got, err := svc.Summary(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.Total)
		assert.Equal(t, 50.0, got.OnDietPercentage)
	})

	t.Run("cache errors fall back to the store", func(t *testing.T) {
		cache.EXPECT().Get(ctx, userID).Return(nil, errors.New("redis down"))
		reader.EXPECT().ListByUserID(ctx, userID).Return([]models.MealDB{}, nil)
		cache.EXPECT().Set(ctx, userID, gomock.Any()).Return(errors.New("redis down"))

		got, err := svc.Summary(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, &models.DietSummary{}, got)
	})

	t.Run("store error", func(t *testing.T) {
		cache.EXPECT().Get(ctx, userID).Return(nil, nil)
		reader.EXPECT().ListByUserID(ctx, userID).Return(nil, errors.New("db error"))

		_, err := svc.Summary(ctx, userID)
		assert.EqualError(t, err, "db error")
	})
}

func TestSummarize(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		meals []models.MealDB
		want  models.DietSummary
	}{
		{
			name:  "no meals",
			meals: nil,
			want:  models.DietSummary{},
		},
		{
			name: "streak follows date and hour, not storage order",
			meals: []models.MealDB{
				{Date: "02/01/2024", Hour: "08:00", IsOnDiet: true},
				{Date: "01/01/2024", Hour: "20:00", IsOnDiet: false},
				{Date: "01/01/2024", Hour: "08:00", IsOnDiet: true},
				{Date: "02/01/2024", Hour: "12:00", IsOnDiet: true},
				{Date: "03/01/2024", Hour: "12:00", IsOnDiet: true},
				{Date: "01/01/2024", Hour: "12:00", IsOnDiet: true},
			},
			want: models.DietSummary{Total: 6, OnDiet: 5, OffDiet: 1, OnDietPercentage: 83.33, BestOnDietStreak: 3},
		},
		{
			name: "ties broken by creation time",
			meals: []models.MealDB{
				{Date: "01/01/2024", Hour: "08:00", IsOnDiet: true, CreatedAt: base.Add(2 * time.Minute)},
				{Date: "01/01/2024", Hour: "08:00", IsOnDiet: false, CreatedAt: base.Add(time.Minute)},
				{Date: "01/01/2024", Hour: "07:00", IsOnDiet: true, CreatedAt: base},
			},
			want: models.DietSummary{Total: 3, OnDiet: 2, OffDiet: 1, OnDietPercentage: 66.67, BestOnDietStreak: 1},
		},
		{
			name: "all off diet",
			meals: []models.MealDB{
				{Date: "01/01/2024", Hour: "08:00", IsOnDiet: false},
			},
			want: models.DietSummary{Total: 1, OffDiet: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, &tt.want, Summarize(tt.meals))
		})
	}
}
