package mongodb

import (
	"context"

	"github.com/fittrack/fittrack-api/internal/domain"
	"github.com/fittrack/fittrack-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WorkoutStore implements store.WorkoutStore backed by a MongoDB collection.
type WorkoutStore struct {
	coll *mongo.Collection
}

// Compile-time check that WorkoutStore satisfies the interface.
var _ store.WorkoutStore = (*WorkoutStore)(nil)

// NewWorkoutStore creates a WorkoutStore using the given database.
func NewWorkoutStore(db *mongo.Database) *WorkoutStore {
	return &WorkoutStore{coll: db.Collection(workoutCollection)}
}

// List retrieves all workouts ordered by creation time, newest first.
func (s *WorkoutStore) List(ctx context.Context) ([]domain.Workout, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, translateError("workout", "list", err, store.ErrWorkoutNotFound)
	}

	workouts := []domain.Workout{}
	if err := cursor.All(ctx, &workouts); err != nil {
		return nil, translateError("workout", "list", err, store.ErrWorkoutNotFound)
	}

	return workouts, nil
}

// Create inserts the workout. The caller assigns ID and CreatedAt.
func (s *WorkoutStore) Create(ctx context.Context, workout *domain.Workout) error {
	if _, err := s.coll.InsertOne(ctx, workout); err != nil {
		return translateError("workout", "create", err, store.ErrWorkoutNotFound)
	}
	return nil
}

// Replace overwrites every mutable field of the identified workout and
// returns the stored result. Uses a $set of the full mutable field set so
// identity and creation timestamp are preserved.
func (s *WorkoutStore) Replace(
	ctx context.Context,
	id primitive.ObjectID,
	workout *domain.Workout,
) (*domain.Workout, error) {
	update := bson.M{"$set": bson.M{
		"name":           workout.Name,
		"type":           workout.Type,
		"duration":       workout.Duration,
		"caloriesBurned": workout.CaloriesBurned,
	}}

	return s.findOneAndUpdate(ctx, "replace", id, update)
}

// Patch applies only the fields present in the patch and returns the stored
// result. Omitted fields retain their prior values.
func (s *WorkoutStore) Patch(
	ctx context.Context,
	id primitive.ObjectID,
	patch domain.WorkoutPatch,
) (*domain.Workout, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Type != nil {
		set["type"] = *patch.Type
	}
	if patch.Duration != nil {
		set["duration"] = *patch.Duration
	}
	if patch.CaloriesBurned != nil {
		set["caloriesBurned"] = *patch.CaloriesBurned
	}

	if len(set) == 0 {
		// Nothing to change; still a single read so not-found is reported
		// consistently with a non-empty patch.
		var workout domain.Workout
		err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&workout)
		if err != nil {
			return nil, translateError("workout", "patch", err, store.ErrWorkoutNotFound)
		}
		return &workout, nil
	}

	return s.findOneAndUpdate(ctx, "patch", id, bson.M{"$set": set})
}

// Delete removes the identified workout. Returns ErrWorkoutNotFound when no
// document matched, so repeating the same delete fails the second time.
func (s *WorkoutStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translateError("workout", "delete", err, store.ErrWorkoutNotFound)
	}
	if result.DeletedCount == 0 {
		return store.ErrWorkoutNotFound
	}
	return nil
}

func (s *WorkoutStore) findOneAndUpdate(
	ctx context.Context,
	operation string,
	id primitive.ObjectID,
	update bson.M,
) (*domain.Workout, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.Workout
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if err != nil {
		return nil, translateError("workout", operation, err, store.ErrWorkoutNotFound)
	}

	return &updated, nil
}
