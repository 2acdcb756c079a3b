package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidID = errors.New("invalid booking ID format")

	// ErrStatusChanged means the booking left the expected status between
	// the read and the conditional write.
	ErrStatusChanged = errors.New("booking status changed concurrently")

	ErrAlreadyRated = errors.New("booking has already been rated")
)
