// internal/domain/donation.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Donation represents a single entry in the append-only donation ledger.
// Donations are immutable once created; aggregates on the referenced
// user are kept in sync by the store's recording operation.
type Donation struct {
	ID        int64           `db:"id" json:"id"`               // Primary key, BIGSERIAL in DB
	UserID    int64           `db:"user_id" json:"userId"`      // Fundraiser the donation counts toward
	Amount    decimal.Decimal `db:"amount" json:"amount"`       // Positive donation amount, NUMERIC(20, 4) in DB
	DonorName string          `db:"donor_name" json:"donorName"` // Free-text donor display name, not a User
	CreatedAt time.Time       `db:"created_at" json:"date"`     // Timestamp of the donation
}

// NewDonation creates a new Donation instance.
func NewDonation(userID int64, amount decimal.Decimal, donorName string) *Donation {
	return &Donation{
		UserID:    userID,
		Amount:    amount,
		DonorName: donorName,
		CreatedAt: time.Now().UTC(),
	}
}
