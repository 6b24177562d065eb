package mongodb

import (
	"context"

	"github.com/fittrack/fittrack-api/internal/domain"
	"github.com/fittrack/fittrack-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProgressStore implements store.ProgressStore backed by a MongoDB collection.
type ProgressStore struct {
	coll *mongo.Collection
}

var _ store.ProgressStore = (*ProgressStore)(nil)

// NewProgressStore creates a ProgressStore using the given database.
func NewProgressStore(db *mongo.Database) *ProgressStore {
	return &ProgressStore{coll: db.Collection(progressCollection)}
}

// List retrieves all progress entries ordered by creation time, newest first.
func (s *ProgressStore) List(ctx context.Context) ([]domain.Progress, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, translateError("progress", "list", err, store.ErrProgressNotFound)
	}

	entries := []domain.Progress{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, translateError("progress", "list", err, store.ErrProgressNotFound)
	}

	return entries, nil
}

// Create inserts the progress entry. The caller assigns ID and CreatedAt.
func (s *ProgressStore) Create(ctx context.Context, progress *domain.Progress) error {
	if _, err := s.coll.InsertOne(ctx, progress); err != nil {
		return translateError("progress", "create", err, store.ErrProgressNotFound)
	}
	return nil
}
