package api

import (
	"log/slog"
	"net/http"

	"github.com/fittrack/fittrack-api/internal/api/shared"
	"github.com/fittrack/fittrack-api/internal/platform/logger"
	"github.com/fittrack/fittrack-api/internal/store"
)

// ProgressHandler handles progress-entry HTTP requests. Only listing is
// exposed over HTTP; that subset is the contract, not an oversight.
type ProgressHandler struct {
	progressStore store.ProgressStore
	logger        *slog.Logger
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progressStore store.ProgressStore, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ProgressHandler")
	}

	return &ProgressHandler{
		progressStore: progressStore,
		logger:        logger.With(slog.String("component", "progress_handler")),
	}
}

// List handles GET /progress requests.
// It returns all progress entries ordered newest first.
func (h *ProgressHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	entries, err := h.progressStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("listed progress entries", slog.Int("count", len(entries)))
	shared.RespondWithJSON(w, r, http.StatusOK, entries)
}
