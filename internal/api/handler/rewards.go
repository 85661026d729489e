// internal/api/handler/rewards.go
package handler

import "net/http"

// GetRewardCatalog returns the static reward catalog.
// GET /api/rewards
func (h *Handler) GetRewardCatalog(w http.ResponseWriter, r *http.Request) {
	h.respondWithJSON(w, http.StatusOK, h.rewards.Catalog())
}

// GetUserRewards returns the catalog evaluated against a fundraiser's
// current total.
// GET /api/users/{id}/rewards
func (h *Handler) GetUserRewards(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	statuses, err := h.rewards.UserRewards(r.Context(), id)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, statuses)
}
