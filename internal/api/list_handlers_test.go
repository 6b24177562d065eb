package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrack/fittrack-api/internal/domain"
	"github.com/fittrack/fittrack-api/internal/store"
)

func TestProgressList(t *testing.T) {
	t.Parallel()

	ps := &fakeProgressStore{}

	older, err := domain.NewProgress("665f1f77bcf86cd799439011", 82.5, 18.2, 36.4)
	require.NoError(t, err)
	require.NoError(t, ps.Create(context.Background(), older))

	newer, err := domain.NewProgress("665f1f77bcf86cd799439011", 81.9, 17.8, 36.6)
	require.NoError(t, err)
	require.NoError(t, ps.Create(context.Background(), newer))

	h := NewProgressHandler(ps, slog.Default())

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/progress", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var listed []domain.Progress
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, newer.ID, listed[0].ID, "newest entry first")
}

func TestProgressListStoreFault(t *testing.T) {
	t.Parallel()

	ps := &fakeProgressStore{
		failWith: store.NewStoreError("progress", "list", "database operation failed", errors.New("timeout")),
	}
	h := NewProgressHandler(ps, slog.Default())

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/progress", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestUserList(t *testing.T) {
	t.Parallel()

	us := &fakeUserStore{}

	older, err := domain.NewUser("Ada", 34, "female", "ada@example.com")
	require.NoError(t, err)
	require.NoError(t, us.Create(context.Background(), older))

	newer, err := domain.NewUser("Grace", 41, "female", "grace@example.com")
	require.NoError(t, err)
	require.NoError(t, us.Create(context.Background(), newer))

	h := NewUserHandler(us, slog.Default())

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/user", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var listed []domain.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "Grace", listed[0].Name, "newest user first")
}

func TestUserListStoreFault(t *testing.T) {
	t.Parallel()

	us := &fakeUserStore{
		failWith: store.NewStoreError("user", "list", "database operation failed", errors.New("timeout")),
	}
	h := NewUserHandler(us, slog.Default())

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/user", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
