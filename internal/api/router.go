// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fundraise-tracker/internal/api/handler"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(h *handler.Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Signup)
			r.Post("/login", h.Login)
		})

		r.Route("/users/{id}", func(r chi.Router) {
			r.Get("/", h.GetUser)
			r.Get("/stats", h.GetUserStats)
			r.Get("/rewards", h.GetUserRewards)
			r.Get("/donations", h.GetUserDonations)
		})

		r.Get("/rewards", h.GetRewardCatalog)

		r.Get("/leaderboard", h.GetLeaderboard)
		r.Get("/leaderboard/top/{limit}", h.GetLeaderboardTop)

		r.Route("/donations", func(r chi.Router) {
			r.Get("/", h.GetDonations)
			r.Post("/", h.CreateDonation)
		})

		r.Get("/analytics/overview", h.GetAnalyticsOverview)
	})

	return r
}
