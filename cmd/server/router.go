package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fittrack/fittrack-api/internal/api"
	apiMiddleware "github.com/fittrack/fittrack-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Standard middleware. Recoverer is the final safety net: a panic
	// escaping a handler becomes a logged 500 instead of a dropped
	// connection.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	metaHandler := api.NewMetaHandler()
	workoutHandler := api.NewWorkoutHandler(app.workoutStore, app.logger)
	progressHandler := api.NewProgressHandler(app.progressStore, app.logger)
	userHandler := api.NewUserHandler(app.userStore, app.logger)

	apiKey := apiMiddleware.NewAPIKeyMiddleware(app.config.Auth.APIKey, app.logger)

	// Unprotected informational endpoints
	r.Get("/", metaHandler.Root)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/", metaHandler.VersionInfo)
		r.Get("/docs", metaHandler.Docs)
		r.Get("/docs/openapi.json", metaHandler.OpenAPISpec)

		// Resource routes, guarded by the API-key gate
		r.Group(func(r chi.Router) {
			r.Use(apiKey.Require)

			r.Route("/workout", func(r chi.Router) {
				r.Get("/", workoutHandler.List)
				r.Post("/", workoutHandler.Create)
				r.Put("/{id}", workoutHandler.Replace)
				r.Patch("/{id}", workoutHandler.Patch)
				r.Delete("/{id}", workoutHandler.Delete)
			})

			r.Get("/progress", progressHandler.List)
			r.Get("/user", userHandler.List)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
