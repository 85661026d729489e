// internal/service/rewards.go
package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"fundraise-tracker/internal/domain"
	"fundraise-tracker/internal/repository"
)

// RewardService evaluates the static reward catalog against fundraiser
// totals.
type RewardService interface {
	// Catalog returns the full reward catalog in threshold order.
	Catalog() []domain.RewardTier
	// RewardsFor returns one status per catalog tier, in catalog order.
	// Pure: a tier is unlocked iff totalRaised >= its threshold.
	RewardsFor(totalRaised decimal.Decimal) []domain.RewardStatus
	// UserRewards evaluates the catalog against a user's current total.
	UserRewards(ctx context.Context, userID int64) ([]domain.RewardStatus, error)
}

type rewardService struct {
	catalog []domain.RewardTier
	store   repository.Store
}

// NewRewardService creates a RewardService over the given catalog.
func NewRewardService(catalog []domain.RewardTier, store repository.Store) RewardService {
	return &rewardService{catalog: catalog, store: store}
}

func (s *rewardService) Catalog() []domain.RewardTier {
	catalog := make([]domain.RewardTier, len(s.catalog))
	copy(catalog, s.catalog)
	return catalog
}

func (s *rewardService) RewardsFor(totalRaised decimal.Decimal) []domain.RewardStatus {
	statuses := make([]domain.RewardStatus, len(s.catalog))
	for i, tier := range s.catalog {
		statuses[i] = domain.RewardStatus{
			RewardTier: tier,
			Unlocked:   totalRaised.GreaterThanOrEqual(tier.Threshold),
		}
	}
	return statuses
}

func (s *rewardService) UserRewards(ctx context.Context, userID int64) ([]domain.RewardStatus, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user rewards: %w", err)
	}
	return s.RewardsFor(user.TotalRaised), nil
}
