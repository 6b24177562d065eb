package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fittrack/fittrack-api/internal/config"
	"github.com/fittrack/fittrack-api/internal/platform/mongodb"
	"github.com/fittrack/fittrack-api/internal/store"
)

// application holds every dependency the server needs. It is built once at
// startup; handlers receive their dependencies from here rather than
// reaching for globals.
type application struct {
	config *config.Config
	logger *slog.Logger

	dbClient *mongo.Client

	workoutStore  store.WorkoutStore
	progressStore store.ProgressStore
	userStore     store.UserStore
}

// newApplication connects to the store and wires the application's
// dependencies. The MongoDB connection is established once here and reused
// for the lifetime of the process.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	client, err := mongodb.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	db := mongodb.Database(client, cfg.Database)

	return &application{
		config:        cfg,
		logger:        logger,
		dbClient:      client,
		workoutStore:  mongodb.NewWorkoutStore(db),
		progressStore: mongodb.NewProgressStore(db),
		userStore:     mongodb.NewUserStore(db),
	}, nil
}

// cleanup closes the store connection. Called after the HTTP server has
// shut down.
func (app *application) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.dbClient.Disconnect(ctx); err != nil {
		app.logger.Error("Failed to close store connection", "error", err)
		return
	}

	app.logger.Info("Store connection closed")
}
