package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/aristath/relocate/internal/modules/snapshots"
)

// SnapshotHandlers serves stored grid-run snapshots.
type SnapshotHandlers struct {
	repo *snapshots.Repository
	log  zerolog.Logger
}

// NewSnapshotHandlers creates snapshot handlers.
func NewSnapshotHandlers(repo *snapshots.Repository, log zerolog.Logger) *SnapshotHandlers {
	return &SnapshotHandlers{
		repo: repo,
		log:  log.With().Str("handler", "snapshots").Logger(),
	}
}

// HandleList returns stored runs, newest first.
func (h *SnapshotHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	runs, err := h.repo.List()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list snapshots")
		http.Error(w, "failed to list snapshots", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"runs": runs})
}

// HandleGet returns one run with its result rows.
func (h *SnapshotHandlers) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	run, results, found, err := h.repo.Get(id)
	if err != nil {
		h.log.Error().Err(err).Str("run_id", id).Msg("Failed to get snapshot")
		http.Error(w, "failed to get snapshot", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "snapshot not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"run":     run,
		"results": results,
	})
}
