package validator

import (
	"staybook/pkg/logger"
	"staybook/pkg/model"
	"staybook/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const DiscountRangeMessage = "Discount percentage must be between 0 and 100"

var messages = validation.Messages{
	"name.required":        "Please provide a hotel name",
	"price.required":       "Please provide a price",
	"price.min":            "Price cannot be negative",
	"image.required":       "Please provide an image URL",
	"image.url":            "Image must be a valid URL",
	"location.required":    "Please provide a location",
	"description.required": "Please provide a description",
	"discountPercentage":   DiscountRangeMessage,
	"rating":               "Rating must be between 0 and 5",
	"destinationId":        "Invalid destination ID",
	"type.required":        "Room type is required",
	"capacity.min":         "Capacity must be at least 1",
}

type HotelValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewHotelValidator(log *logger.Logger) *HotelValidator {
	return &HotelValidator{
		validate: validation.New(),
		logger:   log,
	}
}

func (v *HotelValidator) Validate(hotel *model.Hotel) error {
	return validation.Struct(v.validate, hotel, messages)
}

func (v *HotelValidator) ValidateUpdate(update *model.HotelUpdate) error {
	return validation.Struct(v.validate, update, messages)
}
