package models

import (
	"time"

	"github.com/google/uuid"
)

// Layouts of the textual meal date and hour columns.
const (
	MealDateLayout = "02/01/2006"
	MealHourLayout = "15:04"
)

// MealDB represents a meal row in the database
type MealDB struct {
	MealID      uuid.UUID `json:"id" db:"id"`                   // Primary key
	UserID      uuid.UUID `json:"user_id" db:"user_id"`         // Owner of the meal
	Name        string    `json:"name" db:"name"`               // Short meal name
	Description string    `json:"description" db:"description"` // Free-text description
	Hour        string    `json:"hour" db:"hour"`               // HH:MM, 24-hour clock
	Date        string    `json:"date" db:"date"`               // DD/MM/YYYY
	IsOnDiet    bool      `json:"is_on_diet" db:"is_on_diet"`   // Whether the meal respects the diet
	CreatedAt   time.Time `json:"created_at" db:"created_at"`   // Set once at creation
}

// MealInput holds the mutable fields of a meal as accepted by create and update.
type MealInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	MealHour    string `json:"meal_hour" validate:"required,meal_hour"`
	MealDate    string `json:"meal_date" validate:"required,meal_date"`
	IsOnDiet    *bool  `json:"is_on_diet" validate:"required"`
}

// EatenAt combines the meal date and hour into a single instant.
// Rows that fail to parse sort first.
func (m *MealDB) EatenAt() time.Time {
	t, err := time.Parse(MealDateLayout+" "+MealHourLayout, m.Date+" "+m.Hour)
	if err != nil {
		return time.Time{}
	}
	return t
}
