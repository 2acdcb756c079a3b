package validator

import (
	"errors"
	"staybook/pkg/logger"
	"staybook/pkg/model"
	"staybook/pkg/validation"
	"strings"

	"github.com/go-playground/validator/v10"
)

var messages = validation.Messages{
	"image.url":          "Image must be a valid URL",
	"rating":             "Rating must be between 0 and 5",
	"hotelCount":         "Hotel count cannot be negative",
	"popularAttractions": "Too many popular attractions",
}

type DestinationValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewDestinationValidator(log *logger.Logger) *DestinationValidator {
	return &DestinationValidator{
		validate: validation.New(),
		logger:   log,
	}
}

// Validate reports every absent required field in one message,
// "Missing required fields: name, country". Other failures follow.
func (v *DestinationValidator) Validate(d *model.Destination) error {
	err := v.validate.Struct(d)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var missing []string
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" && !strings.Contains(fe.Field(), "[") {
			missing = append(missing, fe.Field())
		}
	}

	translated := validation.Translate(fieldErrs, messages)
	if len(missing) == 0 {
		return translated
	}

	out := validation.ValidationErrors{{
		Field:   strings.Join(missing, ","),
		Message: "Missing required fields: " + strings.Join(missing, ", "),
	}}
	for _, e := range translated {
		if !contains(missing, e.Field) {
			out = append(out, e)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
