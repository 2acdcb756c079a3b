package sanitizer

import "math"

// NormalizeMoney rounds to cents. Negative amounts are left for the
// validators to reject.
func NormalizeMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}
