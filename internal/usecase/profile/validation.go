package profile

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/gdugdh24/profiles-backend/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const minInterests = 3

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Violations are reported under the JSON field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	_ = v.RegisterValidation("past", validatePast)
	v.RegisterStructValidation(validateInterests, ProfileRequest{})

	return v
}

func validatePast(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	return ok && t.Before(time.Now())
}

func validateInterests(sl validator.StructLevel) {
	req := sl.Current().Interface().(ProfileRequest)
	if req.toEntity(uuid.Nil).InterestCount() < minInterests {
		sl.ReportError(nil, "interests", "Interests", "min_interests", "3")
	}
}

// validateRequest runs every rule and returns nil or an InvalidInput error
// listing all violations.
func (uc *ProfileUseCase) validateRequest(req *ProfileRequest) error {
	err := uc.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.InvalidInput(err.Error())
	}

	details := make([]domain.FieldViolation, 0, len(verrs))
	for _, e := range verrs {
		details = append(details, domain.FieldViolation{
			Field:   e.Field(),
			Message: violationMessage(e),
		})
	}

	return domain.InvalidInput("Validation failed", details...)
}

func violationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required."
	case "max":
		return e.Field() + " must not exceed " + e.Param() + " characters."
	case "uuid":
		return e.Field() + " must be a valid UUID."
	case "oneof":
		return e.Field() + " must be one of: " + e.Param() + "."
	case "past":
		return e.Field() + " must be in the past."
	case "min_interests":
		return "You must select at least three interests from the available options."
	default:
		return e.Field() + " is invalid."
	}
}
