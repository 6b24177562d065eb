package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout represents a single recorded workout session.
// The store assigns the ID and CreatedAt on insert; both are immutable
// afterwards.
type Workout struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Type           string             `bson:"type" json:"type"`
	Duration       int                `bson:"duration" json:"duration"`
	CaloriesBurned int                `bson:"caloriesBurned" json:"caloriesBurned"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// NewWorkout creates a new Workout with a freshly assigned ID and creation
// timestamp. Returns an error if validation fails.
func NewWorkout(name, workoutType string, duration, caloriesBurned int) (*Workout, error) {
	w := &Workout{
		ID:             primitive.NewObjectID(),
		Name:           name,
		Type:           workoutType,
		Duration:       duration,
		CaloriesBurned: caloriesBurned,
		CreatedAt:      time.Now().UTC(),
	}

	if err := w.Validate(); err != nil {
		return nil, err
	}

	return w, nil
}

// Validate checks if the Workout has valid data.
// Returns an error if any field fails validation.
func (w *Workout) Validate() error {
	if w.ID.IsZero() {
		return ErrInvalidID
	}
	if w.Name == "" {
		return ErrEmptyName
	}
	if w.Duration <= 0 {
		return ErrInvalidDuration
	}
	if w.CaloriesBurned < 0 {
		return ErrInvalidCalories
	}
	return nil
}

// WorkoutPatch describes a partial update to a Workout. Nil fields are
// left untouched by Apply.
type WorkoutPatch struct {
	Name           *string `json:"name,omitempty"`
	Type           *string `json:"type,omitempty"`
	Duration       *int    `json:"duration,omitempty"`
	CaloriesBurned *int    `json:"caloriesBurned,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p WorkoutPatch) IsEmpty() bool {
	return p.Name == nil && p.Type == nil && p.Duration == nil && p.CaloriesBurned == nil
}

// Apply merges the patch onto the workout field by field. Identity and
// creation timestamp are never touched. Returns an error if the merged
// workout fails validation.
func (p WorkoutPatch) Apply(w *Workout) error {
	merged := *w
	if p.Name != nil {
		merged.Name = *p.Name
	}
	if p.Type != nil {
		merged.Type = *p.Type
	}
	if p.Duration != nil {
		merged.Duration = *p.Duration
	}
	if p.CaloriesBurned != nil {
		merged.CaloriesBurned = *p.CaloriesBurned
	}

	if err := merged.Validate(); err != nil {
		return err
	}

	*w = merged
	return nil
}
