package store

import (
	"context"

	"github.com/fittrack/fittrack-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutStore defines the interface for workout data persistence.
// Every method maps to exactly one database operation; there are no
// retries or multi-step transactions behind this interface.
type WorkoutStore interface {
	// List retrieves all workouts ordered by creation time, newest first.
	List(ctx context.Context) ([]domain.Workout, error)

	// Create saves a new workout to the store. The workout must carry a
	// pre-assigned ID and creation timestamp (see domain.NewWorkout).
	// Returns ErrInvalidEntity (wrapped) if the store rejects the document.
	Create(ctx context.Context, workout *domain.Workout) error

	// Replace overwrites every mutable field of the workout with the given
	// ID and returns the stored result. Identity and creation timestamp
	// are preserved. Returns ErrWorkoutNotFound if the ID does not exist.
	Replace(ctx context.Context, id primitive.ObjectID, workout *domain.Workout) (*domain.Workout, error)

	// Patch applies a partial update to the workout with the given ID and
	// returns the stored result. Only fields present in the patch change.
	// Returns ErrWorkoutNotFound if the ID does not exist.
	Patch(ctx context.Context, id primitive.ObjectID, patch domain.WorkoutPatch) (*domain.Workout, error)

	// Delete removes the workout with the given ID.
	// Returns ErrWorkoutNotFound if the ID does not exist. Deleting the
	// same ID twice therefore fails the second time.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
