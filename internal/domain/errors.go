package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)

// ValidationError signals a missing required field, an invalid enum value,
// or a reference to a row that does not exist. Maps to HTTP 400.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ConflictError signals a unique-constraint violation. Maps to HTTP 400.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }
