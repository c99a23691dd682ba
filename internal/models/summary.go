package models

// DietSummary aggregates the diet compliance of one user.
type DietSummary struct {
	Total            int     `json:"total"`
	OnDiet           int     `json:"on_diet"`
	OffDiet          int     `json:"off_diet"`
	OnDietPercentage float64 `json:"on_diet_percentage"`
	BestOnDietStreak int     `json:"best_on_diet_streak"`
}
