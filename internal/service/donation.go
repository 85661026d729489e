// internal/service/donation.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"fundraise-tracker/internal/domain"
	"fundraise-tracker/internal/repository"
	"fundraise-tracker/internal/util"
)

// DonationStats carries a fundraiser's aggregates after a donation was
// recorded, including the rank recomputed against the updated store.
type DonationStats struct {
	TotalRaised   decimal.Decimal `json:"totalRaised"`
	DonationCount int64           `json:"donationCount"`
	Rank          int             `json:"rank"`
}

// DonationWithFundraiser joins a ledger entry with the display name of
// the fundraiser it counts toward.
type DonationWithFundraiser struct {
	domain.Donation
	InternName string `json:"internName"`
}

// DonationService validates and records donations against the ledger.
type DonationService interface {
	// Record validates the submission, appends it to the ledger and
	// updates the fundraiser's aggregates atomically. Returns the
	// created donation and the post-update stats.
	Record(ctx context.Context, userID int64, amount decimal.Decimal, donorName string) (*domain.Donation, *DonationStats, error)
	// ListAll returns every ledger entry joined with the fundraiser's
	// name, "Unknown" when the user cannot be resolved.
	ListAll(ctx context.Context) ([]DonationWithFundraiser, error)
	// ListByUser returns a user's ledger entries. Unknown users yield
	// an empty slice, not an error.
	ListByUser(ctx context.Context, userID int64) ([]domain.Donation, error)
}

type donationService struct {
	store   repository.Store
	ranking RankingService
}

// NewDonationService creates a new DonationService.
func NewDonationService(store repository.Store, ranking RankingService) DonationService {
	return &donationService{store: store, ranking: ranking}
}

func (s *donationService) Record(ctx context.Context, userID int64, amount decimal.Decimal, donorName string) (*domain.Donation, *DonationStats, error) {
	if userID <= 0 {
		return nil, nil, fmt.Errorf("%w: userId is required", util.ErrValidation)
	}
	if !amount.IsPositive() {
		return nil, nil, fmt.Errorf("%w: amount must be positive", util.ErrValidation)
	}
	if strings.TrimSpace(donorName) == "" {
		return nil, nil, fmt.Errorf("%w: donorName is required", util.ErrValidation)
	}

	donation, user, err := s.store.RecordDonation(ctx, userID, amount, donorName)
	if err != nil {
		return nil, nil, fmt.Errorf("record donation: %w", err)
	}

	rank, err := s.ranking.RankOf(ctx, user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("record donation: failed to compute rank: %w", err)
	}

	return donation, &DonationStats{
		TotalRaised:   user.TotalRaised,
		DonationCount: user.DonationCount,
		Rank:          rank,
	}, nil
}

func (s *donationService) ListAll(ctx context.Context) ([]DonationWithFundraiser, error) {
	donations, err := s.store.ListDonations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}

	namesByID := make(map[int64]string, len(users))
	for _, u := range users {
		namesByID[u.ID] = u.Name
	}

	joined := make([]DonationWithFundraiser, len(donations))
	for i, d := range donations {
		name, ok := namesByID[d.UserID]
		if !ok {
			name = "Unknown"
		}
		joined[i] = DonationWithFundraiser{Donation: d, InternName: name}
	}
	return joined, nil
}

func (s *donationService) ListByUser(ctx context.Context, userID int64) ([]domain.Donation, error) {
	donations, err := s.store.ListDonationsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list donations for user %d: %w", userID, err)
	}
	return donations, nil
}
