// internal/repository/memory/store_test.go
package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundraise-tracker/internal/domain"
	"fundraise-tracker/internal/util"
)

func newUser(name, email string) *domain.User {
	return domain.NewUser(name, email, "password123", "Test University")
}

func TestCreateUserAssignsMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	first := newUser("Alex Johnson", "alex@email.com")
	require.NoError(t, store.CreateUser(ctx, first))
	second := newUser("Sarah Chen", "sarah@email.com")
	require.NoError(t, store.CreateUser(ctx, second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.CreateUser(ctx, newUser("Alex Johnson", "alex@email.com")))

	err := store.CreateUser(ctx, newUser("Alexis Johnson", "alex@email.com"))
	assert.ErrorIs(t, err, util.ErrDuplicateEmail)

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestGetUserByIDUnknown(t *testing.T) {
	store := NewStore()

	_, err := store.GetUserByID(context.Background(), 42)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestListUsersReturnsInsertionOrderSnapshot(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.CreateUser(ctx, newUser("Alex Johnson", "alex@email.com")))
	require.NoError(t, store.CreateUser(ctx, newUser("Sarah Chen", "sarah@email.com")))
	require.NoError(t, store.CreateUser(ctx, newUser("Mike Rodriguez", "mike@email.com")))

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "Alex Johnson", users[0].Name)
	assert.Equal(t, "Sarah Chen", users[1].Name)
	assert.Equal(t, "Mike Rodriguez", users[2].Name)

	// Mutating the snapshot must not leak into the store.
	users[0].Name = "Changed"
	fresh, err := store.GetUserByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Alex Johnson", fresh.Name)
}

func TestRecordDonationUpdatesLedgerAndAggregates(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	user := newUser("Alex Johnson", "alex@email.com")
	require.NoError(t, store.CreateUser(ctx, user))

	donation, updated, err := store.RecordDonation(ctx, user.ID, decimal.NewFromInt(150), "John Smith")
	require.NoError(t, err)

	assert.Equal(t, int64(1), donation.ID)
	assert.Equal(t, user.ID, donation.UserID)
	assert.Equal(t, "John Smith", donation.DonorName)
	assert.True(t, decimal.NewFromInt(150).Equal(updated.TotalRaised))
	assert.Equal(t, int64(1), updated.DonationCount)

	count, err := store.CountDonations(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRecordDonationUnknownUserLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, _, err := store.RecordDonation(ctx, 99, decimal.NewFromInt(50), "John Smith")
	assert.ErrorIs(t, err, util.ErrUserNotFound)

	count, err := store.CountDonations(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestListDonationsByUserUnknownUserIsEmpty(t *testing.T) {
	store := NewStore()

	donations, err := store.ListDonationsByUser(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, donations)
	assert.Empty(t, donations)
}

func TestConcurrentDonationsPreserveLedgerInvariant(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	alex := newUser("Alex Johnson", "alex@email.com")
	require.NoError(t, store.CreateUser(ctx, alex))
	sarah := newUser("Sarah Chen", "sarah@email.com")
	require.NoError(t, store.CreateUser(ctx, sarah))

	const perUser = 50
	amount := decimal.NewFromInt(5)

	var wg sync.WaitGroup
	for i := 0; i < perUser; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _, err := store.RecordDonation(ctx, alex.ID, amount, "Donor A")
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, _, err := store.RecordDonation(ctx, sarah.ID, amount, "Donor B")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	for _, id := range []int64{alex.ID, sarah.ID} {
		user, err := store.GetUserByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(perUser), user.DonationCount)
		assert.True(t, decimal.NewFromInt(perUser*5).Equal(user.TotalRaised))

		donations, err := store.ListDonationsByUser(ctx, id)
		require.NoError(t, err)
		assert.Len(t, donations, perUser)
	}

	count, err := store.CountDonations(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2*perUser), count)

	// Ledger IDs are unique and monotonic.
	donations, err := store.ListDonations(ctx)
	require.NoError(t, err)
	seen := make(map[int64]bool, len(donations))
	for _, d := range donations {
		assert.False(t, seen[d.ID], "duplicate donation ID %d", d.ID)
		seen[d.ID] = true
	}
}
