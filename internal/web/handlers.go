package web

import (
	"context"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/jobsheet/tracker/internal/logging"
	"github.com/jobsheet/tracker/internal/store"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListListings serves the stored snapshot.
// Query params: status (appStatus filter), limit.
func (s *Server) handleListListings(w http.ResponseWriter, r *http.Request) {
	opts := store.ListOpts{
		Status: r.URL.Query().Get("status"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			writeError(r.Context(), w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		opts.Limit = limit
	}

	listings, err := s.service.Listings(r.Context(), opts)
	if err != nil {
		logging.FromContext(r.Context()).Error("list listings failed", "error", err)
		writeError(r.Context(), w, http.StatusInternalServerError, "failed to load listings")
		return
	}
	if listings == nil {
		listings = []store.StoredListing{}
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"listings": listings,
		"count":    len(listings),
	})
}

// handleSync fetches the sheet and replaces the stored snapshot.
func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	result, err := s.service.Sync(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Error("sync failed", "error", err)
		writeError(r.Context(), w, http.StatusBadGateway, "sync failed")
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, result)
}

// writeJSON encodes v as JSON and writes it with the given status.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(ctx).Error("json encode failed", "error", err)
	}
}

// writeError writes a JSON error response. The message is what the client
// sees; actual causes are logged by the handler before calling this.
func writeError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	writeJSON(ctx, w, status, map[string]string{"error": message})
}
