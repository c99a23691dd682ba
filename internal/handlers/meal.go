package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/daily-diet/internal/models"
)

//go:generate mockgen -source=meal.go -destination=meal_mock.go -package=handlers

// MealCreator creates meals for an owner.
type MealCreator interface {
	Create(ctx context.Context, userID uuid.UUID, in models.MealInput) (*models.MealDB, error)
}

// MealLister lists the meals of an owner.
type MealLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.MealDB, error)
}

// MealGetter reads one meal of an owner.
type MealGetter interface {
	Get(ctx context.Context, userID, mealID uuid.UUID) (*models.MealDB, error)
}

// MealUpdater replaces one meal of an owner.
type MealUpdater interface {
	Update(ctx context.Context, userID, mealID uuid.UUID, in models.MealInput) error
}

// MealDeleter removes one meal of an owner.
type MealDeleter interface {
	Delete(ctx context.Context, userID, mealID uuid.UUID) error
}

// SummaryGetter computes the diet summary of an owner.
type SummaryGetter interface {
	Summary(ctx context.Context, userID uuid.UUID) (*models.DietSummary, error)
}

// MealRequest represents the JSON body for creating or updating a meal
// swagger:model MealRequest
type MealRequest struct {
	// required: true
	// default: Lunch
	Name string `json:"name"`

	// required: true
	// default: Salad
	Description string `json:"description"`

	// HH:MM, 24-hour clock
	// required: true
	// default: 12:30
	MealHour string `json:"meal_hour"`

	// DD/MM/YYYY
	// required: true
	// default: 01/01/2024
	MealDate string `json:"meal_date"`

	// required: true
	IsOnDiet *bool `json:"is_on_diet"`
}

func (m MealRequest) input() models.MealInput {
	return models.MealInput{
		Name:        m.Name,
		Description: m.Description,
		MealHour:    m.MealHour,
		MealDate:    m.MealDate,
		IsOnDiet:    m.IsOnDiet,
	}
}

// MealCreatedResponse represents a successful meal creation
// swagger:model MealCreatedResponse
type MealCreatedResponse struct {
	// default: Meal created
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

// NewCreateMealHandler returns an HTTP handler that creates a meal for the caller.
// @Summary Create meal
// @Tags meals
// @Accept json
// @Produce json
// @Param mealRequest body handlers.MealRequest true "Meal"
// @Success 201 {object} handlers.MealCreatedResponse "Meal created"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /dashboard/new-meal [post]
func NewCreateMealHandler(svc MealCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		var req MealRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		meal, err := svc.Create(r.Context(), identity.ID, req.input())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, MealCreatedResponse{
			Message: "Meal created",
			ID:      meal.MealID,
		})
	}
}

// NewListMealsHandler returns an HTTP handler that lists the caller's meals.
// @Summary List meals
// @Tags meals
// @Produce json
// @Success 200 {array} models.MealDB "Meals of the caller"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /dashboard/meals [get]
func NewListMealsHandler(svc MealLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		meals, err := svc.List(r.Context(), identity.ID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if meals == nil {
			meals = []models.MealDB{}
		}

		writeJSON(w, http.StatusOK, meals)
	}
}

// NewGetMealHandler returns an HTTP handler that reads one of the caller's meals.
// @Summary Get meal
// @Tags meals
// @Produce json
// @Param id path string true "Meal ID"
// @Success 200 {object} models.MealDB "Meal"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Meal not found"
// @Router /dashboard/meals/{id} [get]
func NewGetMealHandler(svc MealGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		mealID, ok := mealIDParam(w, r)
		if !ok {
			return
		}

		meal, err := svc.Get(r.Context(), identity.ID, mealID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, meal)
	}
}

// NewUpdateMealHandler returns an HTTP handler that replaces one of the caller's meals.
// @Summary Update meal
// @Tags meals
// @Accept json
// @Produce json
// @Param id path string true "Meal ID"
// @Param mealRequest body handlers.MealRequest true "Meal"
// @Success 200 {object} handlers.MessageResponse "Meal updated"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Meal not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /dashboard/update/{id} [put]
func NewUpdateMealHandler(svc MealUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		mealID, ok := mealIDParam(w, r)
		if !ok {
			return
		}

		var req MealRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := svc.Update(r.Context(), identity.ID, mealID, req.input()); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Meal updated"})
	}
}

// NewDeleteMealHandler returns an HTTP handler that removes one of the caller's meals.
// @Summary Delete meal
// @Tags meals
// @Produce json
// @Param id path string true "Meal ID"
// @Success 200 {object} handlers.MessageResponse "Meal deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Meal not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /dashboard/delete/{id} [delete]
func NewDeleteMealHandler(svc MealDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		mealID, ok := mealIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), identity.ID, mealID); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Meal deleted"})
	}
}

// NewSummaryHandler returns an HTTP handler with the caller's diet summary.
// @Summary Diet summary
// @Tags meals
// @Produce json
// @Success 200 {object} models.DietSummary "Diet summary"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /dashboard/summary [get]
func NewSummaryHandler(svc SummaryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		summary, err := svc.Summary(r.Context(), identity.ID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

// mealIDParam parses the {id} URL parameter. A malformed id cannot name any
// meal, so it is answered with 404 like a missing one.
func mealIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Meal not found")
		return uuid.Nil, false
	}
	return id, true
}
