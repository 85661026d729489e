// internal/repository/memory/store.go
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"fundraise-tracker/internal/domain"
	"fundraise-tracker/internal/util"
)

// Store is the in-memory implementation of repository.Store.
//
// A single RWMutex enforces the concurrency model: mutations (signup,
// donation recording) take the write lock, so the ledger append and the
// aggregate update form one critical section; reads take the read lock
// and return copies, so callers always observe a consistent snapshot.
type Store struct {
	mu sync.RWMutex

	users        []*domain.User          // insertion order, canonical for rank tie-breaks
	usersByID    map[int64]*domain.User
	usersByEmail map[string]*domain.User
	donations    []*domain.Donation // append-only ledger

	nextUserID     int64
	nextDonationID int64
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		usersByID:    make(map[int64]*domain.User),
		usersByEmail: make(map[string]*domain.User),
	}
}

// CreateUser adds a new user, assigning the next monotonic ID.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usersByEmail[user.Email]; exists {
		return fmt.Errorf("create user %q: %w", user.Email, util.ErrDuplicateEmail)
	}

	s.nextUserID++
	u := *user
	u.ID = s.nextUserID

	s.users = append(s.users, &u)
	s.usersByID[u.ID] = &u
	s.usersByEmail[u.Email] = &u

	user.ID = u.ID
	return nil
}

// GetUserByID retrieves a copy of the user with the given ID.
func (s *Store) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.usersByID[id]
	if !ok {
		return nil, fmt.Errorf("get user %d: %w", id, util.ErrUserNotFound)
	}
	copied := *u
	return &copied, nil
}

// GetUserByEmail retrieves a copy of the user with the given email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.usersByEmail[email]
	if !ok {
		return nil, fmt.Errorf("get user by email %q: %w", email, util.ErrUserNotFound)
	}
	copied := *u
	return &copied, nil
}

// ListUsers returns a snapshot of all users in insertion order.
func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]domain.User, len(s.users))
	for i, u := range s.users {
		users[i] = *u
	}
	return users, nil
}

// RecordDonation appends a ledger entry and updates the user's
// aggregates under a single write lock. Either everything is applied
// or, if the user does not exist, nothing is.
func (s *Store) RecordDonation(ctx context.Context, userID int64, amount decimal.Decimal, donorName string) (*domain.Donation, *domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.usersByID[userID]
	if !ok {
		return nil, nil, fmt.Errorf("record donation for user %d: %w", userID, util.ErrUserNotFound)
	}

	s.nextDonationID++
	donation := domain.NewDonation(userID, amount, donorName)
	donation.ID = s.nextDonationID
	s.donations = append(s.donations, donation)

	user.TotalRaised = user.TotalRaised.Add(amount)
	user.DonationCount++

	donationCopy := *donation
	userCopy := *user
	return &donationCopy, &userCopy, nil
}

// ListDonations returns a snapshot of the full ledger in append order.
func (s *Store) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	donations := make([]domain.Donation, len(s.donations))
	for i, d := range s.donations {
		donations[i] = *d
	}
	return donations, nil
}

// ListDonationsByUser returns the user's ledger entries in append
// order. An unknown user yields an empty slice, not an error.
func (s *Store) ListDonationsByUser(ctx context.Context, userID int64) ([]domain.Donation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	donations := make([]domain.Donation, 0)
	for _, d := range s.donations {
		if d.UserID == userID {
			donations = append(donations, *d)
		}
	}
	return donations, nil
}

// CountDonations returns the ledger size.
func (s *Store) CountDonations(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.donations)), nil
}
