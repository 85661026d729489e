// internal/repository/store.go
package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"fundraise-tracker/internal/domain"
)

// Store is the abstract store the core is written against. It is the
// source of truth for user records, their running aggregates, and the
// append-only donation ledger.
//
// Implementations must guarantee:
//   - IDs are assigned from monotonic counters, decoupled from
//     collection size.
//   - ListUsers iterates in insertion (creation) order; the ranking
//     tie-break contract depends on it.
//   - RecordDonation is atomic: the ledger append and the aggregate
//     update are a single critical section, never partially applied.
//   - Read methods return consistent snapshots, never state mid-way
//     through a mutation.
type Store interface {
	// CreateUser adds a new user, assigning its ID. Returns
	// util.ErrDuplicateEmail if the email is already registered.
	CreateUser(ctx context.Context, user *domain.User) error
	// GetUserByID retrieves a user by ID. Returns util.ErrUserNotFound
	// if no such user exists.
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	// GetUserByEmail retrieves a user by its unique email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// ListUsers returns all users in insertion order.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// RecordDonation appends a donation to the ledger and updates the
	// referenced user's TotalRaised and DonationCount as one atomic
	// unit. Returns the created donation and the post-update user.
	RecordDonation(ctx context.Context, userID int64, amount decimal.Decimal, donorName string) (*domain.Donation, *domain.User, error)
	// ListDonations returns the full ledger in append order.
	ListDonations(ctx context.Context) ([]domain.Donation, error)
	// ListDonationsByUser returns the ledger entries referencing the
	// given user, in append order. Unknown users yield an empty slice.
	ListDonationsByUser(ctx context.Context, userID int64) ([]domain.Donation, error)
	// CountDonations returns the size of the ledger.
	CountDonations(ctx context.Context) (int64, error)
}
