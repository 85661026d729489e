// internal/service/helpers_test.go
package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"fundraise-tracker/internal/domain"
	"fundraise-tracker/internal/repository/memory"
)

// createTestUser registers a user and, when total is non-zero, records
// a single donation bringing it to the given total.
func createTestUser(t *testing.T, store *memory.Store, name, email string, total int64) *domain.User {
	t.Helper()
	user := domain.NewUser(name, email, "password123", "Test University")
	require.NoError(t, store.CreateUser(context.Background(), user))
	if total > 0 {
		_, _, err := store.RecordDonation(context.Background(), user.ID, decimal.NewFromInt(total), "Seed Donor")
		require.NoError(t, err)
	}
	return user
}
