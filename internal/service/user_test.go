// internal/service/user_test.go
package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundraise-tracker/internal/repository/memory"
	"fundraise-tracker/internal/util"
)

var testJWTSecret = []byte("test-secret")

func newUserService(store *memory.Store) UserService {
	return NewUserService(store, NewRankingService(store), testJWTSecret)
}

func TestSignupCreatesFundraiser(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	users := newUserService(store)

	user, token, err := users.Signup(ctx, "Alex Johnson", "alex@email.com", "password123", "Stanford")
	require.NoError(t, err)

	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "ALEX2025", user.ReferralCode)
	assert.True(t, user.TotalRaised.IsZero())
	assert.Equal(t, int64(0), user.DonationCount)

	// The issued token identifies the new user.
	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
		return testJWTSecret, nil
	})
	require.NoError(t, err)
	subject, err := parsed.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "1", subject)
}

func TestSignupValidation(t *testing.T) {
	ctx := context.Background()
	users := newUserService(memory.NewStore())

	cases := []struct {
		name                          string
		userName, email, pass, school string
	}{
		{"missing name", "", "alex@email.com", "password123", "Stanford"},
		{"missing email", "Alex Johnson", "", "password123", "Stanford"},
		{"missing password", "Alex Johnson", "alex@email.com", "", "Stanford"},
		{"missing school", "Alex Johnson", "alex@email.com", "password123", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := users.Signup(ctx, tc.userName, tc.email, tc.pass, tc.school)
			assert.ErrorIs(t, err, util.ErrValidation)
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	users := newUserService(memory.NewStore())

	_, _, err := users.Signup(ctx, "Alex Johnson", "alex@email.com", "password123", "Stanford")
	require.NoError(t, err)

	_, _, err = users.Signup(ctx, "Alexis Johnson", "alex@email.com", "hunter2", "MIT")
	assert.ErrorIs(t, err, util.ErrDuplicateEmail)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	users := newUserService(memory.NewStore())

	_, _, err := users.Signup(ctx, "Alex Johnson", "alex@email.com", "password123", "Stanford")
	require.NoError(t, err)

	user, token, err := users.Login(ctx, "alex@email.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "Alex Johnson", user.Name)
	assert.NotEmpty(t, token)

	_, _, err = users.Login(ctx, "alex@email.com", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	// Unknown emails are indistinguishable from bad passwords.
	_, _, err = users.Login(ctx, "nobody@email.com", "password123")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestGetReturnsRank(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	users := newUserService(store)

	createTestUser(t, store, "Leader", "leader@email.com", 500)
	trailing := createTestUser(t, store, "Trailing", "trailing@email.com", 100)

	user, rank, err := users.Get(ctx, trailing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Trailing", user.Name)
	assert.Equal(t, 2, rank)

	_, _, err = users.Get(ctx, 42)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestStatsReturnsLastFiveDonations(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	users := newUserService(store)

	user := createTestUser(t, store, "Alex Johnson", "alex@email.com", 0)
	for i := 1; i <= 7; i++ {
		_, _, err := store.RecordDonation(ctx, user.ID, decimal.NewFromInt(int64(i)), "Donor")
		require.NoError(t, err)
	}

	stats, err := users.Stats(ctx, user.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(7), stats.DonationCount)
	assert.True(t, decimal.NewFromInt(28).Equal(stats.TotalRaised))
	assert.Equal(t, "ALEX2025", stats.ReferralCode)
	require.Len(t, stats.RecentDonations, 5)
	// Last five in ledger order: amounts 3 through 7.
	for i, d := range stats.RecentDonations {
		assert.True(t, decimal.NewFromInt(int64(i+3)).Equal(d.Amount))
	}
}

func TestStatsUnknownUser(t *testing.T) {
	users := newUserService(memory.NewStore())

	_, err := users.Stats(context.Background(), 42)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}
