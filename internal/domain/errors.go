package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of all domain validation errors. The API
// boundary maps anything wrapping it to a client error.
var ErrValidation = errors.New("validation failed")

// Field-specific validation errors. Each wraps ErrValidation so callers can
// match either the specific error or the whole category.
var (
	// ErrInvalidID is returned when an identifier is malformed or missing.
	ErrInvalidID = fmt.Errorf("%w: invalid ID", ErrValidation)

	// ErrEmptyName is returned when a required name field is empty.
	ErrEmptyName = fmt.Errorf("%w: name cannot be empty", ErrValidation)

	// ErrInvalidDuration is returned when a workout duration is not positive.
	ErrInvalidDuration = fmt.Errorf("%w: duration must be greater than zero", ErrValidation)

	// ErrInvalidCalories is returned when a calorie count is negative.
	ErrInvalidCalories = fmt.Errorf("%w: calories burned cannot be negative", ErrValidation)

	// ErrEmptyUserID is returned when a progress entry has no user reference.
	ErrEmptyUserID = fmt.Errorf("%w: user ID cannot be empty", ErrValidation)
)
