package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/fittrack/fittrack-api/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// connectTimeout bounds the initial connection and ping at startup.
// Request-time operations are not bounded here; they run under the
// request's own context.
const connectTimeout = 10 * time.Second

// Collection names used by the store implementations.
const (
	workoutCollection  = "workouts"
	progressCollection = "progress"
	userCollection     = "users"
)

// Connect establishes the single logical connection to MongoDB used for the
// lifetime of the process and verifies it with a ping. The returned client
// must be closed with Disconnect on shutdown.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		// Best effort: release whatever the driver allocated before failing.
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, nil
}

// Database returns the application database referenced by the config.
func Database(client *mongo.Client, cfg config.DatabaseConfig) *mongo.Database {
	return client.Database(cfg.Name)
}
