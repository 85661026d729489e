// internal/api/handler/users.go
package handler

import (
	"net/http"

	"fundraise-tracker/internal/domain"
)

// userWithRank decorates the public user view with its current rank.
type userWithRank struct {
	domain.PublicUser
	Rank int `json:"rank"`
}

// GetUser returns a fundraiser's public profile with its rank.
// GET /api/users/{id}
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	user, rank, err := h.users.Get(r.Context(), id)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, userWithRank{PublicUser: *user, Rank: rank})
}

// GetUserStats returns the dashboard stats for a fundraiser.
// GET /api/users/{id}/stats
func (h *Handler) GetUserStats(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	stats, err := h.users.Stats(r.Context(), id)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, stats)
}
