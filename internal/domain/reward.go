// internal/domain/reward.go
package domain

import "github.com/shopspring/decimal"

// RewardTier is a milestone unlocked once a fundraiser's cumulative
// total reaches its threshold. The catalog is fixed at process start
// and ordered by ascending threshold.
type RewardTier struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Threshold   decimal.Decimal `json:"threshold"`
	Icon        string          `json:"icon"`
}

// RewardStatus pairs a catalog tier with whether a given total has
// unlocked it. Derived, never stored.
type RewardStatus struct {
	RewardTier
	Unlocked bool `json:"unlocked"`
}

// DefaultRewardCatalog returns the static reward catalog.
func DefaultRewardCatalog() []RewardTier {
	return []RewardTier{
		{ID: 1, Title: "First Donation", Description: "Receive your first donation", Threshold: decimal.NewFromInt(1), Icon: "🎯"},
		{ID: 2, Title: "Fundraising Rookie", Description: "Raise $500", Threshold: decimal.NewFromInt(500), Icon: "🌟"},
		{ID: 3, Title: "Rising Star", Description: "Raise $1,000", Threshold: decimal.NewFromInt(1000), Icon: "⭐"},
		{ID: 4, Title: "Fundraising Pro", Description: "Raise $2,500", Threshold: decimal.NewFromInt(2500), Icon: "🏆"},
		{ID: 5, Title: "Top Performer", Description: "Raise $5,000", Threshold: decimal.NewFromInt(5000), Icon: "👑"},
		{ID: 6, Title: "Fundraising Legend", Description: "Raise $10,000", Threshold: decimal.NewFromInt(10000), Icon: "🎖️"},
	}
}
