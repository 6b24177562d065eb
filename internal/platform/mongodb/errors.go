package mongodb

import (
	"errors"
	"fmt"

	"github.com/fittrack/fittrack-api/internal/store"
	"go.mongodb.org/mongo-driver/mongo"
)

// documentValidationFailure is the MongoDB server error code returned when a
// document violates a collection's JSON-schema validator.
const documentValidationFailure = 121

// translateError converts a MongoDB driver error into the store package's
// error taxonomy. notFound is the entity-specific not-found sentinel to use
// when the driver reports no matching document.
func translateError(entity, operation string, err error, notFound error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return notFound
	case isSchemaViolation(err):
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: duplicate key: %v", store.ErrInvalidEntity, err)
	default:
		return store.NewStoreError(entity, operation, "database operation failed", err)
	}
}

// isSchemaViolation reports whether the error is a server-side document
// validation failure.
func isSchemaViolation(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == documentValidationFailure {
		return true
	}

	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		for _, we := range writeErr.WriteErrors {
			if we.Code == documentValidationFailure {
				return true
			}
		}
	}

	return false
}
