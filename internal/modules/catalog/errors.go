package catalog

import "errors"

var (
	ErrNotFound   = errors.New("catalog entry not found")
	ErrSlugTaken  = errors.New("service slug already exists")
	ErrValidation = errors.New("validation error")
)
