// internal/service/donation_test.go
package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundraise-tracker/internal/repository/memory"
	"fundraise-tracker/internal/util"
)

func newDonationService(store *memory.Store) DonationService {
	return NewDonationService(store, NewRankingService(store))
}

func TestRecordDonationUpdatesStatsAndRank(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	donations := newDonationService(store)

	user := createTestUser(t, store, "Alex Johnson", "alex@email.com", 0)

	donation, stats, err := donations.Record(ctx, user.ID, decimal.NewFromInt(150), "John")
	require.NoError(t, err)

	assert.Equal(t, user.ID, donation.UserID)
	assert.True(t, decimal.NewFromInt(150).Equal(donation.Amount))
	assert.True(t, decimal.NewFromInt(150).Equal(stats.TotalRaised))
	assert.Equal(t, int64(1), stats.DonationCount)
	assert.Equal(t, 1, stats.Rank)
}

func TestRecordDonationRankReflectsUpdatedTotals(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	donations := newDonationService(store)

	createTestUser(t, store, "Leader", "leader@email.com", 200)
	trailing := createTestUser(t, store, "Trailing", "trailing@email.com", 0)

	// The donation moves the trailing user past the leader; the
	// returned rank must reflect the post-update order.
	_, stats, err := donations.Record(ctx, trailing.ID, decimal.NewFromInt(500), "Big Donor")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Rank)
}

func TestRecordDonationValidation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	donations := newDonationService(store)

	user := createTestUser(t, store, "Alex Johnson", "alex@email.com", 0)

	cases := []struct {
		name      string
		userID    int64
		amount    decimal.Decimal
		donorName string
	}{
		{"missing user id", 0, decimal.NewFromInt(10), "John"},
		{"zero amount", user.ID, decimal.Zero, "John"},
		{"negative amount", user.ID, decimal.NewFromInt(-5), "John"},
		{"missing donor name", user.ID, decimal.NewFromInt(10), "  "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := donations.Record(ctx, tc.userID, tc.amount, tc.donorName)
			assert.ErrorIs(t, err, util.ErrValidation)
		})
	}

	// No partial mutation on any rejected submission.
	count, err := store.CountDonations(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
	fresh, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), fresh.DonationCount)
}

func TestRecordDonationUnknownUser(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	donations := newDonationService(store)

	_, _, err := donations.Record(ctx, 99, decimal.NewFromInt(25), "John")
	assert.ErrorIs(t, err, util.ErrUserNotFound)

	count, err := store.CountDonations(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestRepeatedSubmissionsAreNotDeduplicated(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	donations := newDonationService(store)

	user := createTestUser(t, store, "Alex Johnson", "alex@email.com", 0)

	first, _, err := donations.Record(ctx, user.ID, decimal.NewFromInt(150), "John")
	require.NoError(t, err)
	second, stats, err := donations.Record(ctx, user.ID, decimal.NewFromInt(150), "John")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, decimal.NewFromInt(300).Equal(stats.TotalRaised))
	assert.Equal(t, int64(2), stats.DonationCount)
}

func TestRecordDonationLeavesOtherUsersUntouched(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	donations := newDonationService(store)

	target := createTestUser(t, store, "Target", "target@email.com", 0)
	bystander := createTestUser(t, store, "Bystander", "bystander@email.com", 100)

	_, _, err := donations.Record(ctx, target.ID, decimal.NewFromInt(50), "John")
	require.NoError(t, err)

	fresh, err := store.GetUserByID(ctx, bystander.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(fresh.TotalRaised))
	assert.Equal(t, int64(1), fresh.DonationCount)
}

func TestListAllJoinsFundraiserNames(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	donations := newDonationService(store)

	alex := createTestUser(t, store, "Alex Johnson", "alex@email.com", 0)
	sarah := createTestUser(t, store, "Sarah Chen", "sarah@email.com", 0)

	_, _, err := donations.Record(ctx, alex.ID, decimal.NewFromInt(150), "John Smith")
	require.NoError(t, err)
	_, _, err = donations.Record(ctx, sarah.ID, decimal.NewFromInt(175), "Bob Wilson")
	require.NoError(t, err)

	joined, err := donations.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, joined, 2)
	assert.Equal(t, "Alex Johnson", joined[0].InternName)
	assert.Equal(t, "Sarah Chen", joined[1].InternName)
}

func TestListByUserUnknownUserIsEmptyNotError(t *testing.T) {
	store := memory.NewStore()
	donations := newDonationService(store)

	list, err := donations.ListByUser(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
