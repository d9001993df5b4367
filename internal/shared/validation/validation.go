// Package validation checks submitted forms before anything reaches the
// backend and turns failures into per-field messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a form field name to its message
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for field, msg := range fe {
		parts = append(parts, field+": "+msg)
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

// Has reports whether field failed
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		_, err := time.Parse(time.DateOnly, s)
		return err == nil
	})
	_ = v.RegisterValidation("year", func(fl validator.FieldLevel) bool {
		return optionalInt(fl.Field().String(), func(n int) bool { return n >= 1900 && n <= 2100 })
	})
	_ = v.RegisterValidation("count", func(fl validator.FieldLevel) bool {
		return optionalInt(fl.Field().String(), func(n int) bool { return n >= 0 })
	})
	return v
}

func optionalInt(s string, ok func(int) bool) bool {
	if s == "" {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && ok(n)
}

// Struct validates form and returns FieldErrors, or nil when it passes
func Struct(form any) FieldErrors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"_": err.Error()}
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; !seen {
			out[fe.Field()] = message(fe)
		}
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "eqfield":
		return "Passwords do not match."
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s.", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters.", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s.", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be %s or more.", fe.Param())
	case "lte":
		return fmt.Sprintf("Must be %s or less.", fe.Param())
	case "oneof":
		return "Choose one of the listed options."
	case "isodate":
		return "Use the YYYY-MM-DD format."
	case "numeric":
		return "Must be a number."
	case "year":
		return "Enter a year between 1900 and 2100."
	case "count":
		return "Must be a whole number, 0 or more."
	}
	return "Invalid value."
}
