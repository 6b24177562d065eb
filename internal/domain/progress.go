package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Progress represents one body-measurement entry recorded by a user.
// UserID is a reference to a User's identifier; its existence is not
// enforced anywhere in the system. Entries are append-only: there is no
// update or delete operation for them.
type Progress struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"userId" json:"userId"`
	Weight     float64            `bson:"weight" json:"weight"`
	BodyFat    float64            `bson:"bodyFat" json:"bodyFat"`
	MuscleMass float64            `bson:"muscleMass" json:"muscleMass"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// NewProgress creates a new Progress entry with a freshly assigned ID and
// creation timestamp. Returns an error if validation fails.
func NewProgress(userID string, weight, bodyFat, muscleMass float64) (*Progress, error) {
	p := &Progress{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		Weight:     weight,
		BodyFat:    bodyFat,
		MuscleMass: muscleMass,
		CreatedAt:  time.Now().UTC(),
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks if the Progress entry has valid data.
func (p *Progress) Validate() error {
	if p.ID.IsZero() {
		return ErrInvalidID
	}
	if p.UserID == "" {
		return ErrEmptyUserID
	}
	return nil
}
