package usecases

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalcoban/coban/internal/domain/subscription"
	vo "github.com/digitalcoban/coban/internal/domain/subscription/valueobjects"
	"github.com/digitalcoban/coban/internal/domain/user"
)

func TestExpireSubscriptionsUseCase_Execute_ExpiresLapsed(t *testing.T) {
	lapsed := []*subscription.Subscription{
		lapsedActiveSubscription(t, 10, 1),
		lapsedActiveSubscription(t, 11, 2),
	}
	var cancelled []string
	var updatedSIDs []string
	mockRepo := &mockSubscriptionRepository{
		FindExpiredFunc: func(ctx context.Context) ([]*subscription.Subscription, error) {
			return lapsed, nil
		},
		UpdateFunc: func(ctx context.Context, s *subscription.Subscription) error {
			updatedSIDs = append(updatedSIDs, s.SID())
			return nil
		},
	}
	mockGw := &mockPaymentGateway{
		CancelRecurringFunc: func(ctx context.Context, gatewayRef string) error {
			cancelled = append(cancelled, gatewayRef)
			return nil
		},
	}

	uc := NewExpireSubscriptionsUseCase(mockRepo, &mockUserRepository{}, mockGw, nil, &mockLogger{})
	count, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Len(t, cancelled, 2)
	assert.Len(t, updatedSIDs, 2)
	for _, sub := range lapsed {
		assert.Equal(t, vo.StatusExpired, sub.Status())
	}
}

func TestExpireSubscriptionsUseCase_Execute_ContinuesPastRowFailure(t *testing.T) {
	lapsed := []*subscription.Subscription{
		lapsedActiveSubscription(t, 10, 1),
		lapsedActiveSubscription(t, 11, 2),
	}
	mockRepo := &mockSubscriptionRepository{
		FindExpiredFunc: func(ctx context.Context) ([]*subscription.Subscription, error) {
			return lapsed, nil
		},
		UpdateFunc: func(ctx context.Context, s *subscription.Subscription) error {
			if s.ID() == 10 {
				return stderrors.New("version conflict")
			}
			return nil
		},
	}

	uc := NewExpireSubscriptionsUseCase(mockRepo, &mockUserRepository{}, &mockPaymentGateway{}, nil, &mockLogger{})
	count, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestExpireSubscriptionsUseCase_Execute_GatewayCancelFailureLeavesActive(t *testing.T) {
	lapsed := []*subscription.Subscription{lapsedActiveSubscription(t, 10, 1)}
	updateCalls := 0
	mockRepo := &mockSubscriptionRepository{
		FindExpiredFunc: func(ctx context.Context) ([]*subscription.Subscription, error) {
			return lapsed, nil
		},
		UpdateFunc: func(ctx context.Context, s *subscription.Subscription) error {
			updateCalls++
			return nil
		},
	}
	mockGw := &mockPaymentGateway{
		CancelRecurringFunc: func(ctx context.Context, gatewayRef string) error {
			return stderrors.New("gateway timeout")
		},
	}

	uc := NewExpireSubscriptionsUseCase(mockRepo, &mockUserRepository{}, mockGw, nil, &mockLogger{})
	count, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Zero(t, updateCalls, "row must not be written when cancellation failed")
	assert.Equal(t, vo.StatusActive, lapsed[0].Status(), "row stays active for the next sweep")
}

func TestExpireSubscriptionsUseCase_Execute_Notifies(t *testing.T) {
	lapsed := []*subscription.Subscription{lapsedActiveSubscription(t, 10, 1)}
	mockRepo := &mockSubscriptionRepository{
		FindExpiredFunc: func(ctx context.Context) ([]*subscription.Subscription, error) {
			return lapsed, nil
		},
	}
	mockUsers := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return testUser(t), nil
		},
	}
	var notifiedEmail string
	var notifiedEnd time.Time
	notifier := &mockExpiryNotifier{
		NotifyExpiredFunc: func(ctx context.Context, email, username string, endedAt time.Time) error {
			notifiedEmail = email
			notifiedEnd = endedAt
			return nil
		},
	}

	uc := NewExpireSubscriptionsUseCase(mockRepo, mockUsers, &mockPaymentGateway{}, notifier, &mockLogger{})
	count, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, "farmer@example.com", notifiedEmail)
	assert.False(t, notifiedEnd.IsZero())
}

func TestExpireSubscriptionsUseCase_Execute_NotifierFailureDoesNotFailSweep(t *testing.T) {
	lapsed := []*subscription.Subscription{lapsedActiveSubscription(t, 10, 1)}
	mockRepo := &mockSubscriptionRepository{
		FindExpiredFunc: func(ctx context.Context) ([]*subscription.Subscription, error) {
			return lapsed, nil
		},
	}
	mockUsers := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return testUser(t), nil
		},
	}
	notifier := &mockExpiryNotifier{
		NotifyExpiredFunc: func(ctx context.Context, email, username string, endedAt time.Time) error {
			return stderrors.New("smtp down")
		},
	}

	uc := NewExpireSubscriptionsUseCase(mockRepo, mockUsers, &mockPaymentGateway{}, notifier, &mockLogger{})
	count, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestExpireSubscriptionsUseCase_Execute_NothingToDo(t *testing.T) {
	uc := NewExpireSubscriptionsUseCase(&mockSubscriptionRepository{}, &mockUserRepository{}, &mockPaymentGateway{}, nil, &mockLogger{})
	count, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}
