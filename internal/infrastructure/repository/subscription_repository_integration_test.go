package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/digitalcoban/coban/internal/domain/billing"
	"github.com/digitalcoban/coban/internal/domain/subscription"
	"github.com/digitalcoban/coban/internal/infrastructure/persistence/models"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.SubscriptionModel{}, &models.AnimalModel{}, &models.AreaModel{})
	require.NoError(t, err)

	return db
}

func createTestSubscription(t *testing.T, userID uint) *subscription.Subscription {
	t.Helper()
	sub, err := subscription.NewTrialSubscription(userID, billing.Counts{billing.AnimalTypeLarge: 2}, 2400, subscription.DefaultTrialDays)
	require.NoError(t, err)
	return sub
}

func TestSubscriptionRepository_CreateAndGetByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db, logger.NewLogger())
	ctx := context.Background()

	sub := createTestSubscription(t, 1)
	require.NoError(t, repo.Create(ctx, sub))
	assert.NotZero(t, sub.ID())

	found, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, sub.SID(), found.SID())
	assert.Equal(t, sub.Status(), found.Status())
	assert.Equal(t, int64(2400), found.MonthlyPrice())
	assert.Equal(t, 2, found.AnimalCounts()[billing.AnimalTypeLarge])
}

func TestSubscriptionRepository_GetByUserID_MissReturnsNil(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db, logger.NewLogger())

	found, err := repo.GetByUserID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSubscriptionRepository_GetBySessionToken(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db, logger.NewLogger())
	ctx := context.Background()

	sub := createTestSubscription(t, 1)
	require.NoError(t, sub.BeginCheckout("tok_lookup", "gw_ref"))
	require.NoError(t, repo.Create(ctx, sub))

	found, err := repo.GetBySessionToken(ctx, "tok_lookup")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, sub.SID(), found.SID())

	miss, err := repo.GetBySessionToken(ctx, "tok_unknown")
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestSubscriptionRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db, logger.NewLogger())
	ctx := context.Background()

	sub := createTestSubscription(t, 1)
	require.NoError(t, repo.Create(ctx, sub))

	require.NoError(t, sub.BeginCheckout("tok_update", "gw_ref"))
	require.NoError(t, repo.Update(ctx, sub))

	found, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, found.SessionToken())
	assert.Equal(t, "tok_update", *found.SessionToken())
	assert.Equal(t, sub.Version(), found.Version())
}

func TestSubscriptionRepository_Update_ConcurrentModification(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db, logger.NewLogger())
	ctx := context.Background()

	sub := createTestSubscription(t, 1)
	require.NoError(t, repo.Create(ctx, sub))

	// two aggregates loaded from the same row
	first, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	second, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, first.BeginCheckout("tok_first", "gw_ref"))
	require.NoError(t, repo.Update(ctx, first))

	require.NoError(t, second.BeginCheckout("tok_second", "gw_ref"))
	err = repo.Update(ctx, second)
	assert.Error(t, err, "stale version must not overwrite the winner")

	found, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, found.SessionToken())
	assert.Equal(t, "tok_first", *found.SessionToken())
}

func TestSubscriptionRepository_FindExpired(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db, logger.NewLogger())
	ctx := context.Background()

	// lapsed: active with a period end in the past
	lapsed := createTestSubscription(t, 1)
	require.NoError(t, lapsed.BeginCheckout("tok_lapsed", "gw_ref"))
	require.NoError(t, lapsed.ActivateFromCheckout(time.Now().UTC().AddDate(-1, 0, -1), 1))
	require.NoError(t, repo.Create(ctx, lapsed))

	// current: active with a period end in the future
	current := createTestSubscription(t, 2)
	require.NoError(t, current.BeginCheckout("tok_current", "gw_ref"))
	require.NoError(t, current.ActivateFromCheckout(time.Now().UTC(), 1))
	require.NoError(t, repo.Create(ctx, current))

	// still in trial, never paid
	trial := createTestSubscription(t, 3)
	require.NoError(t, repo.Create(ctx, trial))

	expired, err := repo.FindExpired(ctx)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, lapsed.SID(), expired[0].SID())
}
