package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalcoban/coban/internal/domain/subscription"
	vo "github.com/digitalcoban/coban/internal/domain/subscription/valueobjects"
	"github.com/digitalcoban/coban/internal/shared/errors"
)

func TestGetStatusUseCase_Execute_Trial(t *testing.T) {
	sub := trialSubscription(t, 1)
	mockRepo := &mockSubscriptionRepository{
		GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
			return sub, nil
		},
	}

	uc := NewGetStatusUseCase(mockRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, vo.StatusNone, result.Status)
	assert.True(t, result.InTrial)
	assert.False(t, result.NeedsPayment)
	assert.Nil(t, result.SubscriptionStart)
	assert.Equal(t, int64(4500), result.MonthlyPrice)
}

func TestGetStatusUseCase_Execute_LapsedTrialNeedsPayment(t *testing.T) {
	sub := lapsedActiveSubscription(t, 10, 1)
	require.NoError(t, sub.MarkAsExpired())
	mockRepo := &mockSubscriptionRepository{
		GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
			return sub, nil
		},
	}

	uc := NewGetStatusUseCase(mockRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, vo.StatusExpired, result.Status)
	assert.False(t, result.InTrial)
	assert.True(t, result.NeedsPayment)
}

func TestGetStatusUseCase_Execute_Active(t *testing.T) {
	sub := activeSubscription(t, 1, "chk_token")
	mockRepo := &mockSubscriptionRepository{
		GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
			return sub, nil
		},
	}

	uc := NewGetStatusUseCase(mockRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, vo.StatusActive, result.Status)
	assert.False(t, result.NeedsPayment)
	require.NotNil(t, result.SubscriptionEnd)
}

func TestGetStatusUseCase_Execute_NotFound(t *testing.T) {
	uc := NewGetStatusUseCase(&mockSubscriptionRepository{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), 99)
	assert.True(t, errors.IsNotFoundError(err))
}
