package validator

import (
	"staybook/pkg/logger"
	"staybook/pkg/model"
	"staybook/pkg/validation"

	"github.com/go-playground/validator/v10"
)

var messages = validation.Messages{
	"hotelId.required":   "Hotel ID is required",
	"hotelId.mongodb":    "Invalid hotel ID",
	"userId.required":    "Unauthorized",
	"checkIn.required":   "Check-in date is required",
	"checkOut.required":  "Check-out date is required",
	"checkOut.gtfield":   "Check-out must be after check-in",
	"numberOfGuests.min": "Number of guests must be at least 1",
	"numberOfGuests.max": "Number of guests cannot exceed 50",
	"totalPrice":         "Total price cannot be negative",
	"status":             "Invalid status",
	"userRating":         "Invalid rating value",
}

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validation.New()

	if err := v.RegisterValidation("booking_status", validateBookingStatus); err != nil {
		log.Fatal("Failed to register 'booking_status' validator",
			"error", err,
		)
	}

	log.Info("Booking validator initialized successfully")

	return &BookingValidator{
		validate: v,
		logger:   log,
	}
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	return model.IsValidStatus(fl.Field().String())
}

func (v *BookingValidator) Validate(booking *model.Booking) error {
	return validation.Struct(v.validate, booking, messages)
}

func (v *BookingValidator) ValidateStatus(status string) error {
	if !model.IsValidStatus(status) {
		return validation.ValidationErrors{
			validation.ValidationError{
				Field:   "status",
				Message: messages["status"],
			},
		}
	}
	return nil
}
