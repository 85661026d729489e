// internal/repository/memory/seed.go
package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"fundraise-tracker/internal/domain"
)

// SeedDemoData loads the demo fundraisers and donations into an empty
// store. It is a no-op when the store already holds users.
//
// The demo aggregates intentionally predate the ledger (the sample
// fundraisers arrive with historical totals but only the four most
// recent donations), so the ledger/aggregate invariant holds only for
// data recorded through RecordDonation.
func (s *Store) SeedDemoData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.users) > 0 {
		return
	}

	type seedUser struct {
		name, email, school string
		totalRaised         int64
		donationCount       int64
		createdAt           string
	}
	seedUsers := []seedUser{
		{"Alex Johnson", "alex@email.com", "Stanford University", 5250, 42, "2024-01-15"},
		{"Sarah Chen", "sarah@email.com", "MIT", 4800, 38, "2024-01-20"},
		{"Mike Rodriguez", "mike@email.com", "UC Berkeley", 4200, 35, "2024-01-10"},
		{"Emma Davis", "emma@email.com", "Harvard", 3950, 31, "2024-01-25"},
		{"David Park", "david@email.com", "UCLA", 3600, 28, "2024-01-30"},
	}
	for _, su := range seedUsers {
		s.nextUserID++
		createdAt, _ := time.Parse("2006-01-02", su.createdAt)
		u := &domain.User{
			ID:            s.nextUserID,
			Name:          su.name,
			Email:         su.email,
			Password:      "password123",
			School:        su.school,
			ReferralCode:  domain.GenerateReferralCode(su.name),
			TotalRaised:   decimal.NewFromInt(su.totalRaised),
			DonationCount: su.donationCount,
			CreatedAt:     createdAt,
		}
		s.users = append(s.users, u)
		s.usersByID[u.ID] = u
		s.usersByEmail[u.Email] = u
	}

	type seedDonation struct {
		userID    int64
		amount    int64
		donorName string
		createdAt string
	}
	seedDonations := []seedDonation{
		{1, 150, "John Smith", "2024-12-01"},
		{1, 200, "Jane Doe", "2024-12-02"},
		{2, 175, "Bob Wilson", "2024-12-01"},
		{3, 300, "Lisa Brown", "2024-12-03"},
	}
	for _, sd := range seedDonations {
		s.nextDonationID++
		createdAt, _ := time.Parse("2006-01-02", sd.createdAt)
		s.donations = append(s.donations, &domain.Donation{
			ID:        s.nextDonationID,
			UserID:    sd.userID,
			Amount:    decimal.NewFromInt(sd.amount),
			DonorName: sd.donorName,
			CreatedAt: createdAt,
		})
	}
}
