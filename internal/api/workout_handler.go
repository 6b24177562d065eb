package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fittrack/fittrack-api/internal/api/shared"
	"github.com/fittrack/fittrack-api/internal/domain"
	"github.com/fittrack/fittrack-api/internal/platform/logger"
	"github.com/fittrack/fittrack-api/internal/redact"
	"github.com/fittrack/fittrack-api/internal/store"
)

// WorkoutHandler handles workout-related HTTP requests. Each handler method
// performs exactly one store call and translates its outcome into an HTTP
// response; there are no retries or compensating actions.
type WorkoutHandler struct {
	workoutStore store.WorkoutStore
	logger       *slog.Logger
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutStore store.WorkoutStore, logger *slog.Logger) *WorkoutHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for WorkoutHandler")
	}

	return &WorkoutHandler{
		workoutStore: workoutStore,
		logger:       logger.With(slog.String("component", "workout_handler")),
	}
}

// List handles GET /workout requests.
// It returns all workouts ordered newest first.
func (h *WorkoutHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	workouts, err := h.workoutStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("listed workouts", slog.Int("count", len(workouts)))
	shared.RespondWithJSON(w, r, http.StatusOK, workouts)
}

// Create handles POST /workout requests.
func (h *WorkoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateWorkoutRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("invalid request body", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	workout, err := domain.NewWorkout(req.Name, req.Type, req.Duration, req.CaloriesBurned)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.workoutStore.Create(r.Context(), workout); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("created workout", slog.String("workout_id", workout.ID.Hex()))
	shared.RespondWithJSON(w, r, http.StatusCreated, WorkoutResponse{
		Message: "Workout created",
		Workout: workout,
	})
}

// Replace handles PUT /workout/{id} requests.
// The body carries the full mutable field set; identity and creation
// timestamp are preserved.
func (h *WorkoutHandler) Replace(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req ReplaceWorkoutRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("invalid request body", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	replacement := &domain.Workout{
		Name:           req.Name,
		Type:           req.Type,
		Duration:       req.Duration,
		CaloriesBurned: req.CaloriesBurned,
	}

	updated, err := h.workoutStore.Replace(r.Context(), id, replacement)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("replaced workout", slog.String("workout_id", id.Hex()))
	shared.RespondWithJSON(w, r, http.StatusOK, WorkoutResponse{
		Message: "Workout updated",
		Workout: updated,
	})
}

// Patch handles PATCH /workout/{id} requests.
// Only the submitted fields change; omitted fields retain prior values.
func (h *WorkoutHandler) Patch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req PatchWorkoutRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("invalid request body", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.workoutStore.Patch(r.Context(), id, req.ToPatch())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("patched workout", slog.String("workout_id", id.Hex()))
	shared.RespondWithJSON(w, r, http.StatusOK, WorkoutResponse{
		Message: "Workout updated",
		Workout: updated,
	})
}

// Delete handles DELETE /workout/{id} requests.
// Deleting an existing id succeeds once; repeating the delete is not-found.
func (h *WorkoutHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.workoutStore.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("deleted workout", slog.String("workout_id", id.Hex()))
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Workout deleted"})
}

// pathID extracts and parses the {id} path parameter. A malformed ObjectID
// is a 400, distinct from the 404 a well-formed but unknown id produces;
// the parse happens here so no store call is made for a bad identifier.
func (h *WorkoutHandler) pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Workout ID is required")
		return primitive.NilObjectID, false
	}

	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid workout ID format")
		return primitive.NilObjectID, false
	}

	return id, true
}
