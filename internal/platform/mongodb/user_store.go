package mongodb

import (
	"context"

	"github.com/fittrack/fittrack-api/internal/domain"
	"github.com/fittrack/fittrack-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserStore implements store.UserStore backed by a MongoDB collection.
type UserStore struct {
	coll *mongo.Collection
}

var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a UserStore using the given database.
func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{coll: db.Collection(userCollection)}
}

// List retrieves all users ordered by creation time, newest first.
func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, translateError("user", "list", err, store.ErrUserNotFound)
	}

	users := []domain.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, translateError("user", "list", err, store.ErrUserNotFound)
	}

	return users, nil
}

// Create inserts the user. The caller assigns ID and CreatedAt.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if _, err := s.coll.InsertOne(ctx, user); err != nil {
		return translateError("user", "create", err, store.ErrUserNotFound)
	}
	return nil
}
