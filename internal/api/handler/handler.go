// internal/api/handler/handler.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"fundraise-tracker/internal/service"
	"fundraise-tracker/internal/util"
)

// DefaultTimeout is the per-request timeout applied by the router.
const DefaultTimeout = 60 * time.Second

// Handler holds the services behind the HTTP API. It owns the mapping
// from typed service errors to status codes; services never see HTTP.
type Handler struct {
	users     service.UserService
	donations service.DonationService
	ranking   service.RankingService
	rewards   service.RewardService
	analytics service.AnalyticsService
	logger    *slog.Logger
	startedAt time.Time
}

// New creates a Handler over the given services.
func New(
	users service.UserService,
	donations service.DonationService,
	ranking service.RankingService,
	rewards service.RewardService,
	analytics service.AnalyticsService,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		users:     users,
		donations: donations,
		ranking:   ranking,
		rewards:   rewards,
		analytics: analytics,
		logger:    logger,
		startedAt: time.Now(),
	}
}

// respondWithJSON marshals payload and writes it with the given status.
func (h *Handler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps service errors to status codes.
func (h *Handler) respondWithError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrValidation):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case util.IsError(err, util.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		message = "Invalid credentials"
	case util.IsError(err, util.ErrUserNotFound):
		statusCode = http.StatusNotFound
		message = "User not found"
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "Resource not found"
	case util.IsError(err, util.ErrDuplicateEmail):
		statusCode = http.StatusConflict
		message = "User already exists"
	default:
		h.logger.Error("Unhandled service error", "error", err)
	}

	h.respondWithJSON(w, statusCode, map[string]string{"error": message})
}

// userIDParam extracts the {id} URL parameter.
func userIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, util.ErrValidation
	}
	return id, nil
}

// Health reports process status and uptime.
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(h.startedAt).Seconds(),
	})
}
