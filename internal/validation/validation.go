// Package validation wraps go-playground/validator with the field rules of
// users and meals and turns its errors into field-level messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/daily-diet/internal/models"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	hourPattern     = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
	datePattern     = regexp.MustCompile(`^(0[1-9]|[12]\d|3[01])/(0[1-9]|1[0-2])/\d{4}$`)
)

// FieldError is a single rejected field.
type FieldError struct {
	Field   string
	Message string
}

// Error is returned when one or more fields fail validation.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

// FieldMap returns the rejected fields keyed by their JSON name.
func (e *Error) FieldMap() map[string]string {
	m := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		m[f.Field] = f.Message
	}
	return m
}

// Validator validates request structs.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the username, meal_hour and meal_date rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("meal_hour", func(fl validator.FieldLevel) bool {
		return hourPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("meal_date", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !datePattern.MatchString(s) {
			return false
		}
		_, err := time.Parse(models.MealDateLayout, s)
		return err == nil
	})

	return &Validator{validate: v}
}

// Struct validates s and returns *Error when any field is rejected.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "invalid email format"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "username":
		return "name may only contain letters, digits, underscores (_) and hyphens (-)"
	case "meal_hour":
		return "invalid time format, use HH:MM (e.g. 14:30)"
	case "meal_date":
		return "invalid date format, use DD/MM/YYYY (e.g. 31/12/2025)"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
