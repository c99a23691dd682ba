package validation

import (
	"errors"
	"testing"

	"github.com/sbilibin2017/daily-diet/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func validMeal() models.MealInput {
	return models.MealInput{
		Name:        "Lunch",
		Description: "Salad",
		MealHour:    "12:30",
		MealDate:    "01/01/2024",
		IsOnDiet:    boolPtr(false),
	}
}

func TestValidator_Meal(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		mutate    func(m *models.MealInput)
		wantField string
	}{
		{name: "valid", mutate: func(m *models.MealInput) {}},
		{name: "midnight", mutate: func(m *models.MealInput) { m.MealHour = "00:00" }},
		{name: "last minute", mutate: func(m *models.MealInput) { m.MealHour = "23:59" }},
		{name: "leap day", mutate: func(m *models.MealInput) { m.MealDate = "29/02/2024" }},
		{name: "hour out of range", mutate: func(m *models.MealInput) { m.MealHour = "25:00" }, wantField: "meal_hour"},
		{name: "minute out of range", mutate: func(m *models.MealInput) { m.MealHour = "12:60" }, wantField: "meal_hour"},
		{name: "hour without padding", mutate: func(m *models.MealInput) { m.MealHour = "9:30" }, wantField: "meal_hour"},
		{name: "iso date", mutate: func(m *models.MealInput) { m.MealDate = "2024-01-01" }, wantField: "meal_date"},
		{name: "month out of range", mutate: func(m *models.MealInput) { m.MealDate = "01/13/2024" }, wantField: "meal_date"},
		{name: "impossible day", mutate: func(m *models.MealInput) { m.MealDate = "31/02/2024" }, wantField: "meal_date"},
		{name: "not a leap year", mutate: func(m *models.MealInput) { m.MealDate = "29/02/2023" }, wantField: "meal_date"},
		{name: "empty name", mutate: func(m *models.MealInput) { m.Name = "" }, wantField: "name"},
		{name: "empty description", mutate: func(m *models.MealInput) { m.Description = "" }, wantField: "description"},
		{name: "missing diet flag", mutate: func(m *models.MealInput) { m.IsOnDiet = nil }, wantField: "is_on_diet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validMeal()
			tt.mutate(&in)

			err := v.Struct(in)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verr *Error
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.FieldMap(), tt.wantField)
		})
	}
}

func TestValidator_Register(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		creds     models.RegisterCredentials
		wantField string
	}{
		{name: "valid", creds: models.RegisterCredentials{Name: "alice_1-a", Email: "a@x.com", Password: "secret1"}},
		{name: "name with space", creds: models.RegisterCredentials{Name: "alice b", Email: "a@x.com", Password: "secret1"}, wantField: "name"},
		{name: "bad email", creds: models.RegisterCredentials{Name: "alice", Email: "not-an-email", Password: "secret1"}, wantField: "email"},
		{name: "short password", creds: models.RegisterCredentials{Name: "alice", Email: "a@x.com", Password: "12345"}, wantField: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.creds)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verr *Error
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.FieldMap(), tt.wantField)
			assert.NotEmpty(t, verr.Error())
		})
	}
}
