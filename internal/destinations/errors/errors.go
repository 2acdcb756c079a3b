package errors

import "errors"

var (
	ErrNotFound = errors.New("destination not found")

	ErrInvalidID = errors.New("invalid destination ID format")
)
