package api

import (
	"github.com/fittrack/fittrack-api/internal/domain"
)

// Common request/response structures

// CreateWorkoutRequest defines the payload for POST /api/v1/workout.
type CreateWorkoutRequest struct {
	Name           string `json:"name"           validate:"required"`
	Type           string `json:"type"           validate:"required"`
	Duration       int    `json:"duration"       validate:"required,gt=0"`
	CaloriesBurned int    `json:"caloriesBurned" validate:"gte=0"`
}

// ReplaceWorkoutRequest defines the payload for PUT /api/v1/workout/{id}.
// A replace carries the full mutable field set.
type ReplaceWorkoutRequest struct {
	Name           string `json:"name"           validate:"required"`
	Type           string `json:"type"           validate:"required"`
	Duration       int    `json:"duration"       validate:"required,gt=0"`
	CaloriesBurned int    `json:"caloriesBurned" validate:"gte=0"`
}

// PatchWorkoutRequest defines the payload for PATCH /api/v1/workout/{id}.
// Every field is optional; absent fields leave the stored value untouched.
type PatchWorkoutRequest struct {
	Name           *string `json:"name,omitempty"`
	Type           *string `json:"type,omitempty"`
	Duration       *int    `json:"duration,omitempty"       validate:"omitempty,gt=0"`
	CaloriesBurned *int    `json:"caloriesBurned,omitempty" validate:"omitempty,gte=0"`
}

// ToPatch converts the request into the domain patch type.
func (r PatchWorkoutRequest) ToPatch() domain.WorkoutPatch {
	return domain.WorkoutPatch{
		Name:           r.Name,
		Type:           r.Type,
		Duration:       r.Duration,
		CaloriesBurned: r.CaloriesBurned,
	}
}

// WorkoutResponse wraps a workout in the message envelope used by
// create/update responses.
type WorkoutResponse struct {
	Message string          `json:"message"`
	Workout *domain.Workout `json:"workout"`
}

// MessageResponse is the envelope for responses carrying no entity, such as
// delete confirmations.
type MessageResponse struct {
	Message string `json:"message"`
}

// RootResponse describes the unprotected root endpoint payload.
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}

// VersionResponse lists the resource groups exposed under the API prefix.
type VersionResponse struct {
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}
