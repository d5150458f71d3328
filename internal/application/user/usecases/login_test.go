package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	subusecases "github.com/digitalcoban/coban/internal/application/subscription/usecases"
	"github.com/digitalcoban/coban/internal/domain/billing"
	"github.com/digitalcoban/coban/internal/domain/subscription"
	subvo "github.com/digitalcoban/coban/internal/domain/subscription/valueobjects"
	"github.com/digitalcoban/coban/internal/domain/user"
	uservo "github.com/digitalcoban/coban/internal/domain/user/valueobjects"
	"github.com/digitalcoban/coban/internal/shared/errors"
)

func storedUser(t *testing.T) *user.User {
	t.Helper()
	email, err := uservo.NewEmail("farmer@example.com")
	require.NoError(t, err)
	u, err := user.ReconstructUser(user.UserReconstructParams{
		ID:           1,
		UUID:         "7a1e7d3e-0000-0000-0000-000000000001",
		Username:     "farmer",
		Email:        email,
		PasswordHash: "hashed:correct-horse",
		Version:      1,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	})
	require.NoError(t, err)
	return u
}

func newLoginUseCase(userRepo *mockUserRepository, subRepo *mockSubscriptionRepository) *LoginUseCase {
	getStatus := subusecases.NewGetStatusUseCase(subRepo, &mockLogger{})
	return NewLoginUseCase(userRepo, &mockPasswordHasher{}, &mockTokenIssuer{}, getStatus, &mockLogger{})
}

func TestLoginUseCase_Execute_Success(t *testing.T) {
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return storedUser(t), nil
		},
	}
	trialSub, err := subscription.NewTrialSubscription(1, billing.Counts{billing.AnimalTypeLarge: 2}, 2400, subscription.DefaultTrialDays)
	require.NoError(t, err)
	require.NoError(t, trialSub.SetID(10))
	subRepo := &mockSubscriptionRepository{
		GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
			return trialSub, nil
		},
	}

	uc := newLoginUseCase(userRepo, subRepo)
	result, err := uc.Execute(context.Background(), LoginCommand{Email: "farmer@example.com", Password: "correct-horse"})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Positive(t, result.ExpiresIn)
	require.NotNil(t, result.Subscription)
	assert.Equal(t, subvo.StatusNone, result.Subscription.Status)
	assert.True(t, result.Subscription.InTrial)
	assert.False(t, result.Subscription.NeedsPayment)
}

func TestLoginUseCase_Execute_WrongPassword(t *testing.T) {
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return storedUser(t), nil
		},
	}

	uc := newLoginUseCase(userRepo, &mockSubscriptionRepository{})
	_, err := uc.Execute(context.Background(), LoginCommand{Email: "farmer@example.com", Password: "wrong"})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestLoginUseCase_Execute_UnknownEmail(t *testing.T) {
	uc := newLoginUseCase(&mockUserRepository{}, &mockSubscriptionRepository{})
	_, err := uc.Execute(context.Background(), LoginCommand{Email: "nobody@example.com", Password: "whatever"})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	// Same message as wrong password so the response does not leak
	// which emails exist.
	assert.Contains(t, appErr.Message, "invalid email or password")
}

func TestLoginUseCase_Execute_NoSubscriptionRow(t *testing.T) {
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return storedUser(t), nil
		},
	}

	uc := newLoginUseCase(userRepo, &mockSubscriptionRepository{})
	result, err := uc.Execute(context.Background(), LoginCommand{Email: "farmer@example.com", Password: "correct-horse"})

	require.NoError(t, err)
	assert.Nil(t, result.Subscription)
}
