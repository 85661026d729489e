// internal/api/handler/leaderboard.go
package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// defaultTopLimit is used when the top-N limit parameter is missing or
// malformed.
const defaultTopLimit = 10

// GetLeaderboard returns the full leaderboard, best fundraiser first.
// GET /api/leaderboard
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.ranking.Leaderboard(r.Context(), 0)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, entries)
}

// GetLeaderboardTop returns the top N entries. Ranks are global; the
// slice is truncated after ranking the whole population.
// GET /api/leaderboard/top/{limit}
func (h *Handler) GetLeaderboardTop(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(chi.URLParam(r, "limit"))
	if err != nil || limit <= 0 {
		limit = defaultTopLimit
	}

	entries, lbErr := h.ranking.Leaderboard(r.Context(), limit)
	if lbErr != nil {
		h.respondWithError(w, lbErr)
		return
	}
	h.respondWithJSON(w, http.StatusOK, entries)
}
