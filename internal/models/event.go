package models

// Meal event operations.
const (
	MealCreated = "meal.created"
	MealUpdated = "meal.updated"
	MealDeleted = "meal.deleted"
)

// MealEvent describes a committed change to a meal, published to the event stream.
type MealEvent struct {
	EventID   string `json:"event_id"`   // Unique identifier of the event
	Timestamp int64  `json:"timestamp"`  // Unix timestamp (seconds) of the change
	UserID    string `json:"user_id"`    // Owner of the meal
	MealID    string `json:"meal_id"`    // Affected meal
	Operation string `json:"operation"`  // One of MealCreated, MealUpdated, MealDeleted
	IsOnDiet  bool   `json:"is_on_diet"` // Diet flag after the change
}
