// Package validation wraps go-playground/validator with the error shape the
// API returns: the first message becomes the response error and the full list
// is attached as details.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	apperrors "staybook/pkg/errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// AppError turns the list into a 400 whose message is the first entry.
func (v ValidationErrors) AppError() *apperrors.AppError {
	if len(v) == 0 {
		return apperrors.Validation("Validation failed", nil)
	}
	return apperrors.Validation(v[0].Message, map[string]any{"fields": []ValidationError(v)})
}

// Messages overrides generated messages. Keys are "field.tag" or "field",
// using the JSON field name.
type Messages map[string]string

// New returns a validator that reports JSON field names.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct validates s and translates failures. Errors that are not field
// errors are returned unchanged.
func Struct(v *validator.Validate, s any, messages Messages) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return Translate(validationErrs, messages)
	}
	return err
}

func Translate(errs validator.ValidationErrors, messages Messages) ValidationErrors {
	var out ValidationErrors

	for _, err := range errs {
		field := err.Field()
		message, ok := messages[field+"."+err.Tag()]
		if !ok {
			message, ok = messages[field]
		}
		if !ok {
			message = defaultMessage(err)
		}

		out = append(out, ValidationError{
			Field:   field,
			Message: message,
		})
	}

	return out
}

func defaultMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
	case "mongodb":
		return fmt.Sprintf("%s must be a valid id", err.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", err.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
	case "gtfield":
		return fmt.Sprintf("%s must be after %s", err.Field(), err.Param())
	}
	return err.Error()
}
