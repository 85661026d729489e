// internal/repository/postgres/donation_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"fundraise-tracker/internal/domain"
	"fundraise-tracker/internal/util"
	"fundraise-tracker/pkg/db"
)

// RecordDonation appends a ledger entry and updates the user's
// aggregates inside one database transaction.
func (s *Store) RecordDonation(ctx context.Context, userID int64, amount decimal.Decimal, donorName string) (*domain.Donation, *domain.User, error) {
	tx, err := db.BeginTx(ctx, s.db)
	if err != nil {
		return nil, nil, fmt.Errorf("record donation: %w", err)
	}
	defer db.RollbackTx(tx)

	var user domain.User
	err = tx.GetContext(ctx, &user, `SELECT * FROM users WHERE id = $1 FOR UPDATE`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, fmt.Errorf("record donation for user %d: %w", userID, util.ErrUserNotFound)
		}
		return nil, nil, fmt.Errorf("record donation: failed to lock user %d: %w", userID, err)
	}

	donation := domain.NewDonation(userID, amount, donorName)
	err = tx.QueryRowContext(ctx, `
		INSERT INTO donations (user_id, amount, donor_name, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		donation.UserID, donation.Amount, donation.DonorName, donation.CreatedAt,
	).Scan(&donation.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("record donation: failed to insert ledger entry: %w", err)
	}

	err = tx.GetContext(ctx, &user, `
		UPDATE users
		SET total_raised = total_raised + $1, donation_count = donation_count + 1
		WHERE id = $2
		RETURNING *`,
		amount, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("record donation: failed to update aggregates for user %d: %w", userID, err)
	}

	if err := db.CommitTx(tx); err != nil {
		return nil, nil, fmt.Errorf("record donation: %w", err)
	}
	return donation, &user, nil
}

// ListDonations returns the full ledger in append order.
func (s *Store) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	donations := make([]domain.Donation, 0)
	err := s.db.SelectContext(ctx, &donations, `SELECT * FROM donations ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	return donations, nil
}

// ListDonationsByUser returns the user's ledger entries in append order.
func (s *Store) ListDonationsByUser(ctx context.Context, userID int64) ([]domain.Donation, error) {
	donations := make([]domain.Donation, 0)
	err := s.db.SelectContext(ctx, &donations,
		`SELECT * FROM donations WHERE user_id = $1 ORDER BY id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations for user %d: %w", userID, err)
	}
	return donations, nil
}

// CountDonations returns the ledger size.
func (s *Store) CountDonations(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM donations`)
	if err != nil {
		return 0, fmt.Errorf("failed to count donations: %w", err)
	}
	return count, nil
}
