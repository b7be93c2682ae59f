package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sablemoor/RitualBot_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validation for threshold policy keys
	_ = v.RegisterValidation("policy", validatePolicy)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// validatePolicy accepts the known threshold policy keys. Empty values pass;
// pair with "required" when the field is mandatory.
func validatePolicy(fl validator.FieldLevel) bool {
	key := fl.Field().String()
	if key == "" {
		return true
	}
	_, err := domain.PolicyByKey(key)
	return err == nil
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "policy":
			errs[field] = "Unknown threshold policy"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "lte":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		case "required_without":
			errs[field] = fmt.Sprintf("Required when %s is not set", strings.ToLower(e.Param()))
		case "oneof":
			errs[field] = fmt.Sprintf("Must be one of: %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}
