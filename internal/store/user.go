package store

import (
	"context"

	"github.com/fittrack/fittrack-api/internal/domain"
)

// UserStore defines the interface for user persistence. The HTTP API only
// lists users; Create exists so records can be provisioned directly.
type UserStore interface {
	// List retrieves all users ordered by creation time, newest first.
	List(ctx context.Context) ([]domain.User, error)

	// Create saves a new user to the store. The user must carry a
	// pre-assigned ID and creation timestamp (see domain.NewUser).
	Create(ctx context.Context, user *domain.User) error
}
