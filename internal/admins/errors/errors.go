package errors

import "errors"

var (
	ErrAlreadyAdmin = errors.New("user is already an admin")
)
