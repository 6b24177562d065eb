package api

import (
	"errors"
	"net/http"

	"github.com/fittrack/fittrack-api/internal/domain"
	"github.com/fittrack/fittrack-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This keeps the status mapping in one place
// instead of scattered through the handlers.
func MapErrorToStatusCode(err error) int {
	switch {
	// Malformed identifiers and invalid payloads are client errors,
	// distinct from not-found.
	case errors.Is(err, store.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Well-formed identifier, no matching entity.
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Anything else is an infrastructure fault.
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking internal details such as
// driver errors or connection strings.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrWorkoutNotFound):
		return "Workout not found"

	case errors.Is(err, store.ErrProgressNotFound):
		return "Progress entry not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case store.IsNotFoundError(err):
		return "Resource not found"

	case errors.Is(err, store.ErrInvalidID), errors.Is(err, domain.ErrInvalidID):
		return "Invalid identifier format"

	case errors.Is(err, store.ErrInvalidEntity), errors.Is(err, domain.ErrValidation):
		// Validation details are safe to pass through verbatim; they
		// describe the caller's own payload.
		return err.Error()

	default:
		return "An internal error occurred"
	}
}
