package profile

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/spigell/career-buddy/internal/career"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on an empty tag or a nil func.
	_ = v.RegisterValidation("domain", func(fl validator.FieldLevel) bool {
		return career.IsKnownDomain(fl.Field().String())
	})
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// Validate checks enumerated fields against the values the form offers.
// Free text fields are never rejected.
func Validate(p career.Profile) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate profile: %w", err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}

	return fmt.Errorf("invalid profile: %s", strings.Join(problems, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s %q must be one of [%s]", fe.Field(), fe.Value(), fe.Param())
	case "domain":
		return fmt.Sprintf("%s %q is not one of [%s]", fe.Field(), fe.Value(), strings.Join(career.Domains(), ", "))
	default:
		return fmt.Sprintf("%s failed %s check", fe.Field(), fe.Tag())
	}
}
