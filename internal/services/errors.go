package services

import (
	"errors"
)

// Error taxonomy shared by all services. Callers match with errors.Is and
// map to user-facing messaging; everything not in this list is wrapped as
// ErrPersistence and surfaced generically.
var (
	ErrValidation  = errors.New("invalid input")
	ErrNotFound    = errors.New("not found")
	ErrForbidden   = errors.New("forbidden")
	ErrConflict    = errors.New("already exists")
	ErrPersistence = errors.New("persistence failure")
)
