package store

import (
	"context"

	"github.com/fittrack/fittrack-api/internal/domain"
)

// ProgressStore defines the interface for progress-entry persistence.
// Progress entries are append-only: no update or delete is defined.
type ProgressStore interface {
	// List retrieves all progress entries ordered by creation time,
	// newest first.
	List(ctx context.Context) ([]domain.Progress, error)

	// Create saves a new progress entry to the store. The entry must carry
	// a pre-assigned ID and creation timestamp (see domain.NewProgress).
	// Nothing checks that the entry's UserID refers to an existing user.
	Create(ctx context.Context, progress *domain.Progress) error
}
