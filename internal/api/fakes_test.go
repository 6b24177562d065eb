package api

import (
	"context"
	"sync"

	"github.com/fittrack/fittrack-api/internal/domain"
	"github.com/fittrack/fittrack-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeWorkoutStore is an in-memory store.WorkoutStore with failure
// injection. It keeps entries in insertion order and lists them newest
// first, mirroring the real store's sort.
type fakeWorkoutStore struct {
	mu       sync.Mutex
	workouts []domain.Workout
	failWith error
	calls    int
}

var _ store.WorkoutStore = (*fakeWorkoutStore)(nil)

func (f *fakeWorkoutStore) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeWorkoutStore) List(ctx context.Context) ([]domain.Workout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failWith != nil {
		return nil, f.failWith
	}

	out := make([]domain.Workout, 0, len(f.workouts))
	for i := len(f.workouts) - 1; i >= 0; i-- {
		out = append(out, f.workouts[i])
	}
	return out, nil
}

func (f *fakeWorkoutStore) Create(ctx context.Context, workout *domain.Workout) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failWith != nil {
		return f.failWith
	}

	f.workouts = append(f.workouts, *workout)
	return nil
}

func (f *fakeWorkoutStore) Replace(
	ctx context.Context,
	id primitive.ObjectID,
	workout *domain.Workout,
) (*domain.Workout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failWith != nil {
		return nil, f.failWith
	}

	for i := range f.workouts {
		if f.workouts[i].ID == id {
			f.workouts[i].Name = workout.Name
			f.workouts[i].Type = workout.Type
			f.workouts[i].Duration = workout.Duration
			f.workouts[i].CaloriesBurned = workout.CaloriesBurned
			result := f.workouts[i]
			return &result, nil
		}
	}
	return nil, store.ErrWorkoutNotFound
}

func (f *fakeWorkoutStore) Patch(
	ctx context.Context,
	id primitive.ObjectID,
	patch domain.WorkoutPatch,
) (*domain.Workout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failWith != nil {
		return nil, f.failWith
	}

	for i := range f.workouts {
		if f.workouts[i].ID == id {
			if err := patch.Apply(&f.workouts[i]); err != nil {
				return nil, err
			}
			result := f.workouts[i]
			return &result, nil
		}
	}
	return nil, store.ErrWorkoutNotFound
}

func (f *fakeWorkoutStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failWith != nil {
		return f.failWith
	}

	for i := range f.workouts {
		if f.workouts[i].ID == id {
			f.workouts = append(f.workouts[:i], f.workouts[i+1:]...)
			return nil
		}
	}
	return store.ErrWorkoutNotFound
}

// fakeProgressStore is an in-memory store.ProgressStore.
type fakeProgressStore struct {
	mu       sync.Mutex
	entries  []domain.Progress
	failWith error
	calls    int
}

var _ store.ProgressStore = (*fakeProgressStore)(nil)

func (f *fakeProgressStore) List(ctx context.Context) ([]domain.Progress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failWith != nil {
		return nil, f.failWith
	}

	out := make([]domain.Progress, 0, len(f.entries))
	for i := len(f.entries) - 1; i >= 0; i-- {
		out = append(out, f.entries[i])
	}
	return out, nil
}

func (f *fakeProgressStore) Create(ctx context.Context, progress *domain.Progress) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failWith != nil {
		return f.failWith
	}

	f.entries = append(f.entries, *progress)
	return nil
}

// fakeUserStore is an in-memory store.UserStore.
type fakeUserStore struct {
	mu       sync.Mutex
	users    []domain.User
	failWith error
	calls    int
}

var _ store.UserStore = (*fakeUserStore)(nil)

func (f *fakeUserStore) List(ctx context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failWith != nil {
		return nil, f.failWith
	}

	out := make([]domain.User, 0, len(f.users))
	for i := len(f.users) - 1; i >= 0; i-- {
		out = append(out, f.users[i])
	}
	return out, nil
}

func (f *fakeUserStore) Create(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failWith != nil {
		return f.failWith
	}

	f.users = append(f.users, *user)
	return nil
}
