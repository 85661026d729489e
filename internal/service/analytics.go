// internal/service/analytics.go
package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"fundraise-tracker/internal/repository"
)

// Overview is the population-wide summary for the dashboard.
type Overview struct {
	TotalUsers     int             `json:"totalUsers"`
	TotalRaised    decimal.Decimal `json:"totalRaised"`
	TotalDonations int64           `json:"totalDonations"`
	AveragePerUser decimal.Decimal `json:"averagePerUser"`
}

// AnalyticsService computes summary statistics over the whole
// population, fresh per query.
type AnalyticsService interface {
	// Overview returns population totals. AveragePerUser is rounded to
	// two decimal places and defined as zero for an empty population.
	Overview(ctx context.Context) (*Overview, error)
}

type analyticsService struct {
	store repository.Store
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(store repository.Store) AnalyticsService {
	return &analyticsService{store: store}
}

func (s *analyticsService) Overview(ctx context.Context) (*Overview, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics overview: %w", err)
	}
	donationCount, err := s.store.CountDonations(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics overview: %w", err)
	}

	totalRaised := decimal.Zero
	for _, u := range users {
		totalRaised = totalRaised.Add(u.TotalRaised)
	}

	average := decimal.Zero
	if len(users) > 0 {
		average = totalRaised.Div(decimal.NewFromInt(int64(len(users)))).Round(2)
	}

	return &Overview{
		TotalUsers:     len(users),
		TotalRaised:    totalRaised,
		TotalDonations: donationCount,
		AveragePerUser: average,
	}, nil
}
