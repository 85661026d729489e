// internal/api/handler/analytics.go
package handler

import "net/http"

// GetAnalyticsOverview returns population-wide totals.
// GET /api/analytics/overview
func (h *Handler) GetAnalyticsOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.analytics.Overview(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, overview)
}
