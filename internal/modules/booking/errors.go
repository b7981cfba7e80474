package booking

import "errors"

var (
	ErrNotFound      = errors.New("booking or catalog reference not found")
	ErrValidation    = errors.New("validation error")
	ErrInvalidStatus = errors.New("invalid booking status")
	ErrInvalidAmount = errors.New("payment amount must be positive")
	ErrForbidden     = errors.New("forbidden")
)
