package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalcoban/coban/internal/domain/billing"
	"github.com/digitalcoban/coban/internal/domain/subscription"
	vo "github.com/digitalcoban/coban/internal/domain/subscription/valueobjects"
	"github.com/digitalcoban/coban/internal/shared/errors"
)

func TestCreateTrialUseCase_Execute_Success(t *testing.T) {
	var created *subscription.Subscription
	mockRepo := &mockSubscriptionRepository{
		CreateFunc: func(ctx context.Context, sub *subscription.Subscription) error {
			created = sub
			return nil
		},
	}

	uc := NewCreateTrialUseCase(mockRepo, billing.NewDefaultCalculator(), subscription.DefaultTrialDays, &mockLogger{})
	sub, err := uc.Execute(context.Background(), CreateTrialCommand{
		UserID: 1,
		Counts: billing.Counts{billing.AnimalTypeLarge: 2, billing.AnimalTypeSmall: 3},
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, vo.StatusNone, sub.Status())
	assert.Equal(t, int64(2*1200+3*700), sub.MonthlyPrice())
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 90), sub.TrialEnd(), time.Minute)
	assert.Nil(t, sub.SubscriptionStart())
	assert.Nil(t, sub.SubscriptionEnd())
}

func TestCreateTrialUseCase_Execute_AlreadyExists(t *testing.T) {
	existing := trialSubscription(t, 1)
	mockRepo := &mockSubscriptionRepository{
		GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
			return existing, nil
		},
	}

	uc := NewCreateTrialUseCase(mockRepo, billing.NewDefaultCalculator(), subscription.DefaultTrialDays, &mockLogger{})
	_, err := uc.Execute(context.Background(), CreateTrialCommand{UserID: 1, Counts: testCounts()})

	assert.True(t, errors.IsConflictError(err))
}

func TestCreateTrialUseCase_Execute_InvalidCounts(t *testing.T) {
	uc := NewCreateTrialUseCase(&mockSubscriptionRepository{}, billing.NewDefaultCalculator(), subscription.DefaultTrialDays, &mockLogger{})

	tests := []struct {
		name   string
		counts billing.Counts
	}{
		{"nil counts", nil},
		{"all zero", billing.Counts{billing.AnimalTypeLarge: 0, billing.AnimalTypeSmall: 0}},
		{"negative count", billing.Counts{billing.AnimalTypeLarge: -1}},
		{"unknown type", billing.Counts{"camel": 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), CreateTrialCommand{UserID: 1, Counts: tt.counts})
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
