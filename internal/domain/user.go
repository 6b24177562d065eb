package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered user of the tracker. The HTTP API only
// lists users; records are provisioned directly in the store.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Age       int                `bson:"age" json:"age"`
	Gender    string             `bson:"gender" json:"gender"`
	Email     string             `bson:"email" json:"email"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// NewUser creates a new User with a freshly assigned ID and creation
// timestamp. Returns an error if validation fails.
func NewUser(name string, age int, gender, email string) (*User, error) {
	u := &User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Age:       age,
		Gender:    gender,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID.IsZero() {
		return ErrInvalidID
	}
	if u.Name == "" {
		return ErrEmptyName
	}
	return nil
}
