// Package pricing computes stay length, booking totals and discounted
// display prices.
package pricing

import (
	"math"
	"time"
)

// Mode selects whether the guest count multiplies the booking total.
type Mode string

const (
	PerNight Mode = "per_night"
	PerGuest Mode = "per_guest"
)

func (m Mode) Valid() bool {
	return m == PerNight || m == PerGuest
}

// Nights returns the number of started 24 hour periods between checkIn and
// checkOut. It is zero when checkOut is not after checkIn.
func Nights(checkIn, checkOut time.Time) int {
	d := checkOut.Sub(checkIn)
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Hours() / 24))
}

// Total is the price of a stay at the nightly rate price.
func Total(price float64, nights, guests int, mode Mode) float64 {
	total := price * float64(nights)
	if mode == PerGuest && guests > 0 {
		total *= float64(guests)
	}
	return total
}

// DisplayPrice applies a percentage markdown and rounds to the nearest unit.
func DisplayPrice(price, discountPercentage float64) float64 {
	if discountPercentage <= 0 {
		return math.Round(price)
	}
	return math.Round(price * (1 - discountPercentage/100))
}
