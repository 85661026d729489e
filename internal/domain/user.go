// internal/domain/user.go
package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// User represents a fundraiser account, including the credential.
// It must never be serialized directly; use PublicUser for anything
// that leaves the API layer.
type User struct {
	ID            int64           `db:"id" json:"id"`                        // Primary key, BIGSERIAL in DB
	Name          string          `db:"name" json:"name"`                    // Display name
	Email         string          `db:"email" json:"email"`                  // Unique email address
	Password      string          `db:"password" json:"-"`                   // Plaintext credential (hashing out of scope)
	School        string          `db:"school" json:"school"`                // School the fundraiser represents
	ReferralCode  string          `db:"referral_code" json:"referralCode"`   // Derived from name, informational only
	TotalRaised   decimal.Decimal `db:"total_raised" json:"totalRaised"`     // Running sum of donation amounts
	DonationCount int64           `db:"donation_count" json:"donationCount"` // Number of ledger entries for this user
	CreatedAt     time.Time       `db:"created_at" json:"createdAt"`         // Timestamp of creation
}

// PublicUser is the externally visible view of a User. It structurally
// cannot carry the credential, so handlers never have to strip it.
type PublicUser struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	School        string          `json:"school"`
	ReferralCode  string          `json:"referralCode"`
	TotalRaised   decimal.Decimal `json:"totalRaised"`
	DonationCount int64           `json:"donationCount"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// NewUser creates a new User instance with zeroed aggregates.
func NewUser(name, email, password, school string) *User {
	return &User{
		Name:          name,
		Email:         email,
		Password:      password,
		School:        school,
		ReferralCode:  GenerateReferralCode(name),
		TotalRaised:   decimal.Zero,
		DonationCount: 0,
		CreatedAt:     time.Now().UTC(),
	}
}

// Public returns the credential-free view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		School:        u.School,
		ReferralCode:  u.ReferralCode,
		TotalRaised:   u.TotalRaised,
		DonationCount: u.DonationCount,
		CreatedAt:     u.CreatedAt,
	}
}

// GenerateReferralCode derives the informational referral code from a
// user's name: first word, uppercased, with the campaign year appended.
func GenerateReferralCode(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(fields[0]) + "2025"
}
