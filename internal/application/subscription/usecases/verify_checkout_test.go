package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalcoban/coban/internal/application/payment/paymentgateway"
	"github.com/digitalcoban/coban/internal/domain/subscription"
	vo "github.com/digitalcoban/coban/internal/domain/subscription/valueobjects"
	"github.com/digitalcoban/coban/internal/shared/errors"
)

func TestVerifyCheckoutUseCase_Execute_ActivatesInTrial(t *testing.T) {
	sub := pendingSubscription(t, 1, "chk_token")
	trialEnd := sub.TrialEnd()
	var updated *subscription.Subscription
	mockRepo := &mockSubscriptionRepository{
		GetBySessionTokenFunc: func(ctx context.Context, token string) (*subscription.Subscription, error) {
			if token == "chk_token" {
				return sub, nil
			}
			return nil, nil
		},
		UpdateFunc: func(ctx context.Context, s *subscription.Subscription) error {
			updated = s
			return nil
		},
	}

	uc := NewVerifyCheckoutUseCase(mockRepo, &mockPaymentGateway{}, subscription.DefaultPeriodYears, &mockLogger{})
	result, err := uc.Execute(context.Background(), "chk_token")

	require.NoError(t, err)
	assert.True(t, result.Succeeded)
	require.NotNil(t, updated)
	assert.Equal(t, vo.StatusActive, updated.Status())
	require.NotNil(t, result.SubscriptionEnd)
	// Payment inside the trial appends the paid year to the trial end.
	assert.WithinDuration(t, trialEnd.AddDate(1, 0, 0), *result.SubscriptionEnd, time.Second)
	require.NotNil(t, result.SubscriptionStart)
	assert.WithinDuration(t, time.Now(), *result.SubscriptionStart, time.Minute)
}

func TestVerifyCheckoutUseCase_Execute_ActivatesAfterTrial(t *testing.T) {
	// Pending subscription whose trial window has already lapsed.
	token := "chk_token"
	ref := "gw_ref"
	sub, err := subscription.ReconstructSubscription(subscription.SubscriptionReconstructParams{
		ID:           10,
		SID:          "sub_posttrial",
		UserID:       1,
		AnimalCounts: testCounts(),
		MonthlyPrice: 4500,
		Status:       vo.StatusPending,
		TrialStart:   time.Now().AddDate(0, 0, -120),
		TrialEnd:     time.Now().AddDate(0, 0, -30),
		SessionToken: &token,
		GatewayRef:   &ref,
		Version:      2,
		CreatedAt:    time.Now().AddDate(0, 0, -120),
		UpdatedAt:    time.Now(),
	})
	require.NoError(t, err)

	mockRepo := &mockSubscriptionRepository{
		GetBySessionTokenFunc: func(ctx context.Context, tok string) (*subscription.Subscription, error) {
			return sub, nil
		},
	}

	uc := NewVerifyCheckoutUseCase(mockRepo, &mockPaymentGateway{}, subscription.DefaultPeriodYears, &mockLogger{})
	result, err := uc.Execute(context.Background(), token)

	require.NoError(t, err)
	assert.True(t, result.Succeeded)
	require.NotNil(t, result.SubscriptionEnd)
	// Past the trial the paid year runs from the payment instant.
	assert.WithinDuration(t, time.Now().AddDate(1, 0, 0), *result.SubscriptionEnd, time.Minute)
}

func TestVerifyCheckoutUseCase_Execute_FailedPayment(t *testing.T) {
	sub := pendingSubscription(t, 1, "chk_token")
	updateCalled := false
	mockRepo := &mockSubscriptionRepository{
		GetBySessionTokenFunc: func(ctx context.Context, token string) (*subscription.Subscription, error) {
			return sub, nil
		},
		UpdateFunc: func(ctx context.Context, s *subscription.Subscription) error {
			updateCalled = true
			return nil
		},
	}
	mockGw := &mockPaymentGateway{
		RetrieveOutcomeFunc: func(ctx context.Context, token string) (*paymentgateway.PaymentOutcome, error) {
			return &paymentgateway.PaymentOutcome{Succeeded: false, RawStatus: "FAILURE"}, nil
		},
	}

	uc := NewVerifyCheckoutUseCase(mockRepo, mockGw, subscription.DefaultPeriodYears, &mockLogger{})
	result, err := uc.Execute(context.Background(), "chk_token")

	require.NoError(t, err)
	assert.False(t, result.Succeeded)
	assert.False(t, updateCalled)
	assert.Equal(t, vo.StatusPending, sub.Status())
}

func TestVerifyCheckoutUseCase_Execute_ReplayedCallback(t *testing.T) {
	sub := activeSubscription(t, 1, "chk_token")
	firstEnd := *sub.SubscriptionEnd()
	gatewayCalled := false
	mockRepo := &mockSubscriptionRepository{
		GetBySessionTokenFunc: func(ctx context.Context, token string) (*subscription.Subscription, error) {
			return sub, nil
		},
	}
	mockGw := &mockPaymentGateway{
		RetrieveOutcomeFunc: func(ctx context.Context, token string) (*paymentgateway.PaymentOutcome, error) {
			gatewayCalled = true
			return &paymentgateway.PaymentOutcome{Succeeded: true, RawStatus: "SUCCESS"}, nil
		},
	}

	uc := NewVerifyCheckoutUseCase(mockRepo, mockGw, subscription.DefaultPeriodYears, &mockLogger{})
	result, err := uc.Execute(context.Background(), "chk_token")

	require.NoError(t, err)
	assert.True(t, result.Succeeded)
	assert.False(t, gatewayCalled, "replayed callback must not hit the gateway again")
	require.NotNil(t, result.SubscriptionEnd)
	assert.Equal(t, firstEnd, *result.SubscriptionEnd, "replay must not extend the period")
}

func TestVerifyCheckoutUseCase_Execute_UnknownToken(t *testing.T) {
	uc := NewVerifyCheckoutUseCase(&mockSubscriptionRepository{}, &mockPaymentGateway{}, subscription.DefaultPeriodYears, &mockLogger{})
	_, err := uc.Execute(context.Background(), "chk_unknown")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestVerifyCheckoutUseCase_Execute_EmptyToken(t *testing.T) {
	uc := NewVerifyCheckoutUseCase(&mockSubscriptionRepository{}, &mockPaymentGateway{}, subscription.DefaultPeriodYears, &mockLogger{})
	_, err := uc.Execute(context.Background(), "")
	assert.True(t, errors.IsValidationError(err))
}
