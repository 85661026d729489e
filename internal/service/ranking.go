// internal/service/ranking.go
package service

import (
	"context"
	"fmt"
	"sort"

	"fundraise-tracker/internal/domain"
	"fundraise-tracker/internal/repository"
	"fundraise-tracker/internal/util"
)

// LeaderboardEntry pairs a fundraiser's public view with its rank.
type LeaderboardEntry struct {
	domain.PublicUser
	Rank int `json:"rank"`
}

// RankingService derives leaderboard order over the user population.
//
// Rank is the 1-based position when users are sorted by TotalRaised
// descending. Ties are broken by creation order: the earlier-registered
// user ranks higher. This is an explicit contract, not a sort accident;
// it relies on the store's insertion-order iteration plus a stable sort.
type RankingService interface {
	// RankOf returns the rank of a single user.
	RankOf(ctx context.Context, userID int64) (int, error)
	// Leaderboard returns users with their ranks, best first. Ranks are
	// computed over the full population before truncating to limit;
	// limit <= 0 means all users.
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}

type rankingService struct {
	store repository.Store
}

// NewRankingService creates a new RankingService.
func NewRankingService(store repository.Store) RankingService {
	return &rankingService{store: store}
}

// rankUsers orders an insertion-ordered snapshot by TotalRaised
// descending. The stable sort preserves creation order among ties.
func rankUsers(users []domain.User) []domain.User {
	ranked := make([]domain.User, len(users))
	copy(ranked, users)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalRaised.GreaterThan(ranked[j].TotalRaised)
	})
	return ranked
}

func (s *rankingService) RankOf(ctx context.Context, userID int64) (int, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("rank of user %d: %w", userID, err)
	}
	for i, u := range rankUsers(users) {
		if u.ID == userID {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("rank of user %d: %w", userID, util.ErrUserNotFound)
}

func (s *rankingService) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}

	ranked := rankUsers(users)
	entries := make([]LeaderboardEntry, len(ranked))
	for i := range ranked {
		entries[i] = LeaderboardEntry{
			PublicUser: ranked[i].Public(),
			Rank:       i + 1,
		}
	}
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}
