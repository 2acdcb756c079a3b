package model

import (
	"encoding/json"
	"math"
)

const (
	MinRating = 1
	MaxRating = 5
)

// RatingRequest is the body of a hotel rating. BookingID is optional; without
// it the caller's latest completed, unrated booking of the hotel is used.
type RatingRequest struct {
	Rating    json.Number `json:"rating"`
	BookingID string      `json:"bookingId,omitempty"`
}

// ParseRating accepts whole numbers from MinRating to MaxRating, including
// integral floats such as 4.0.
func ParseRating(n json.Number) (int, bool) {
	if n == "" {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}
	if f < MinRating || f > MaxRating {
		return 0, false
	}
	return int(f), true
}

type RatingResult struct {
	Message       string  `json:"message"`
	AverageRating float64 `json:"averageRating"`
	BookingID     string  `json:"bookingId"`
}
