package model

import (
	"time"
)

// Booking statuses. Both vocabularies seen in clients are accepted:
// approved/rejected for the review step and completed once the stay is over.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusCompleted = "completed"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

var BookingStatuses = []string{StatusPending, StatusApproved, StatusCompleted, StatusRejected, StatusCancelled}

func IsValidStatus(status string) bool {
	for _, s := range BookingStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Booking struct {
	ID             string     `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	HotelID        string     `json:"hotelId" bson:"hotel_id" validate:"required,mongodb"`
	UserID         string     `json:"userId" bson:"user_id" validate:"required,max=128"`
	CheckIn        time.Time  `json:"checkIn" bson:"check_in" validate:"required"`
	CheckOut       time.Time  `json:"checkOut" bson:"check_out" validate:"required,gtfield=CheckIn"`
	NumberOfGuests int        `json:"numberOfGuests" bson:"number_of_guests" validate:"min=1,max=50"`
	TotalPrice     float64    `json:"totalPrice" bson:"total_price" validate:"min=0"`
	Status         string     `json:"status" bson:"status" validate:"required,booking_status"`
	UserRating     *int       `json:"userRating,omitempty" bson:"user_rating,omitempty" validate:"omitempty,min=1,max=5"`
	RatedAt        *time.Time `json:"ratedAt,omitempty" bson:"rated_at,omitempty"`
	CreatedAt      time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" bson:"updated_at"`
}

func (b *Booking) IsRated() bool {
	return b.UserRating != nil
}

// BookingRequest is the client payload for creating a booking. Guests is an
// alias of NumberOfGuests accepted for older clients.
type BookingRequest struct {
	HotelID        string `json:"hotelId"`
	CheckIn        string `json:"checkIn"`
	CheckOut       string `json:"checkOut"`
	NumberOfGuests *int   `json:"numberOfGuests,omitempty"`
	Guests         *int   `json:"guests,omitempty"`
}

// StatusUpdate is accepted both as PATCH /bookings/:id {status} and as
// PATCH /bookings {bookingId, status}.
type StatusUpdate struct {
	BookingID string `json:"bookingId,omitempty"`
	Status    string `json:"status"`
}

// BookingHotel is the subset of hotel fields embedded in booking listings.
type BookingHotel struct {
	ID                 string  `json:"id,omitempty"`
	Name               string  `json:"name"`
	Location           string  `json:"location"`
	Price              float64 `json:"price"`
	Image              string  `json:"image,omitempty"`
	DiscountPercentage float64 `json:"discountPercentage"`
}

const (
	PlaceholderHotelName     = "Unnamed Hotel"
	PlaceholderHotelLocation = "Location not specified"
)

type BookingView struct {
	ID         string       `json:"id"`
	UserID     string       `json:"userId"`
	Hotel      BookingHotel `json:"hotel"`
	CheckIn    time.Time    `json:"checkIn"`
	CheckOut   time.Time    `json:"checkOut"`
	Guests     int          `json:"guests"`
	TotalPrice float64      `json:"totalPrice"`
	Status     string       `json:"status"`
	UserRating *int         `json:"userRating,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// NewBookingView joins a booking with its hotel. A nil hotel renders with
// placeholder fields.
func NewBookingView(b *Booking, h *Hotel) *BookingView {
	view := &BookingView{
		ID:         b.ID,
		UserID:     b.UserID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Guests:     b.NumberOfGuests,
		TotalPrice: b.TotalPrice,
		Status:     b.Status,
		UserRating: b.UserRating,
		CreatedAt:  b.CreatedAt,
	}
	if h == nil {
		view.Hotel = BookingHotel{
			ID:       b.HotelID,
			Name:     PlaceholderHotelName,
			Location: PlaceholderHotelLocation,
		}
		return view
	}
	view.Hotel = BookingHotel{
		ID:                 h.ID,
		Name:               h.Name,
		Location:           h.Location,
		Price:              h.Price,
		Image:              h.Image,
		DiscountPercentage: h.DiscountPercentage,
	}
	if view.Hotel.Name == "" {
		view.Hotel.Name = PlaceholderHotelName
	}
	if view.Hotel.Location == "" {
		view.Hotel.Location = PlaceholderHotelLocation
	}
	return view
}

// BookingFilter narrows booking listings. Empty fields do not filter.
type BookingFilter struct {
	UserID  string
	HotelID string
	Status  string
}
