// internal/api/handler/donations.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"fundraise-tracker/internal/util"
)

// CreateDonationRequest represents the request body for submitting a
// donation. Amount accepts both JSON numbers and numeric strings.
type CreateDonationRequest struct {
	UserID    int64           `json:"userId"`
	Amount    decimal.Decimal `json:"amount"`
	DonorName string          `json:"donorName"`
}

// CreateDonation records a donation against a fundraiser.
// POST /api/donations
func (h *Handler) CreateDonation(w http.ResponseWriter, r *http.Request) {
	var req CreateDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, util.ErrValidation)
		return
	}

	donation, stats, err := h.donations.Record(r.Context(), req.UserID, req.Amount, req.DonorName)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"success":  true,
		"donation": donation,
		"newStats": stats,
	})
}

// GetDonations returns the full ledger with fundraiser names.
// GET /api/donations
func (h *Handler) GetDonations(w http.ResponseWriter, r *http.Request) {
	donations, err := h.donations.ListAll(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, donations)
}

// GetUserDonations returns a fundraiser's ledger entries. An unknown
// user yields an empty list, matching the dashboard's expectations.
// GET /api/users/{id}/donations
func (h *Handler) GetUserDonations(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	donations, lsErr := h.donations.ListByUser(r.Context(), id)
	if lsErr != nil {
		h.respondWithError(w, lsErr)
		return
	}
	h.respondWithJSON(w, http.StatusOK, donations)
}
