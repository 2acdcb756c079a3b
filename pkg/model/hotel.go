package model

import (
	"staybook/pkg/pricing"
	"time"
)

type Room struct {
	Type        string  `json:"type" bson:"type" validate:"required,max=100"`
	Price       float64 `json:"price" bson:"price" validate:"min=0"`
	Capacity    int     `json:"capacity" bson:"capacity" validate:"min=1,max=50"`
	Description string  `json:"description,omitempty" bson:"description,omitempty" validate:"max=2000"`
}

type Hotel struct {
	ID                 string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name               string    `json:"name" bson:"name" validate:"required,min=2,max=200"`
	Price              float64   `json:"price" bson:"price" validate:"min=0"`
	DiscountPercentage float64   `json:"discountPercentage" bson:"discount_percentage" validate:"min=0,max=100"`
	Rating             float64   `json:"rating" bson:"rating" validate:"min=0,max=5"`
	Image              string    `json:"image" bson:"image" validate:"required,url"`
	Location           string    `json:"location" bson:"location" validate:"required,max=200"`
	Description        string    `json:"description" bson:"description" validate:"required,max=5000"`
	DestinationID      string    `json:"destinationId,omitempty" bson:"destination_id,omitempty" validate:"omitempty,mongodb"`
	Amenities          []string  `json:"amenities" bson:"amenities" validate:"max=50,dive,required,max=100"`
	Rooms              []Room    `json:"rooms" bson:"rooms" validate:"max=50,dive"`
	CreatedAt          time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt" bson:"updated_at"`

	DisplayPrice float64 `json:"displayPrice" bson:"-"`
}

// Decorate fills the derived, unpersisted fields.
func (h *Hotel) Decorate() *Hotel {
	h.DisplayPrice = pricing.DisplayPrice(h.Price, h.DiscountPercentage)
	return h
}

// HotelUpdate is a partial update. Rating is derived from booking ratings and
// cannot be set here.
type HotelUpdate struct {
	Name               *string   `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Price              *float64  `json:"price,omitempty" validate:"omitempty,min=0"`
	DiscountPercentage *float64  `json:"discountPercentage,omitempty" validate:"omitempty,min=0,max=100"`
	Image              *string   `json:"image,omitempty" validate:"omitempty,url"`
	Location           *string   `json:"location,omitempty" validate:"omitempty,max=200"`
	Description        *string   `json:"description,omitempty" validate:"omitempty,max=5000"`
	DestinationID      *string   `json:"destinationId,omitempty" validate:"omitempty,mongodb"`
	Amenities          *[]string `json:"amenities,omitempty" validate:"omitempty,max=50,dive,required,max=100"`
	Rooms              *[]Room   `json:"rooms,omitempty" validate:"omitempty,max=50,dive"`
}

type HotelFilter struct {
	DestinationID string
	DealsOnly     bool
}
