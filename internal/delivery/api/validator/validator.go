// Package validator adapts go-playground/validator to echo and registers the
// schedule document rules.
package validator

import (
	"reflect"
	"strings"

	"foodtruck/internal/domain/entity"
	"foodtruck/internal/domain/schedule"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// EchoValidator implements echo.Validator.
type EchoValidator struct {
	validate *validator.Validate
}

// New returns a validator with the "hhmm" and "weekday" rules registered.
// "timezone" is a validator built-in backed by time.LoadLocation.
func New() *EchoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("hhmm", validateClockTime)
	_ = v.RegisterValidation("weekday", validateWeekday)

	return &EchoValidator{validate: v}
}

// Validate validates a struct, returning validator.ValidationErrors on failure.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// FieldErrors flattens validation errors into "field path" -> failed rule.
// Returns nil when err carries no validation errors.
func FieldErrors(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	details := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details[fieldPath(fieldErr.Namespace())] = fieldErr.Tag()
	}

	return details
}

// fieldPath drops the top-level struct name, e.g. "WeeklySchedule.days[0].openTime".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return namespace
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

func validateClockTime(fl validator.FieldLevel) bool {
	return schedule.IsClockTime(fl.Field().String())
}

func validateWeekday(fl validator.FieldLevel) bool {
	_, ok := entity.ParseWeekday(fl.Field().String())

	return ok
}
