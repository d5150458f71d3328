package usecases

import (
	"context"
	"fmt"

	"github.com/digitalcoban/coban/internal/application/payment/paymentgateway"
	"github.com/digitalcoban/coban/internal/domain/subscription"
	vo "github.com/digitalcoban/coban/internal/domain/subscription/valueobjects"
	"github.com/digitalcoban/coban/internal/domain/user"
	"github.com/digitalcoban/coban/internal/shared/errors"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

// BeginRenewalUseCase opens a one-off renewal charge for an active
// subscription. The period is only extended on verification; here the
// new session token is stored so the later verification can find the
// row, and nothing else changes.
type BeginRenewalUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	userRepo         user.Repository
	gateway          paymentgateway.PaymentGateway
	logger           logger.Interface
}

func NewBeginRenewalUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	userRepo user.Repository,
	gateway paymentgateway.PaymentGateway,
	logger logger.Interface,
) *BeginRenewalUseCase {
	return &BeginRenewalUseCase{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		gateway:          gateway,
		logger:           logger,
	}
}

// Execute returns the gateway payment page URL for the renewal charge.
func (uc *BeginRenewalUseCase) Execute(ctx context.Context, userID uint) (string, error) {
	sub, err := uc.subscriptionRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load subscription", "error", err, "user_id", userID)
		return "", fmt.Errorf("failed to load subscription: %w", err)
	}
	if sub == nil {
		return "", errors.NewNotFoundError("subscription not found")
	}

	if sub.Status() != vo.StatusActive {
		return "", errors.NewNotActiveError("subscription is not active")
	}

	if sub.MonthlyPrice() <= 0 {
		return "", errors.NewValidationError("invalid subscription price")
	}

	owner, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "error", err, "user_id", userID)
		return "", fmt.Errorf("failed to load user: %w", err)
	}
	if owner == nil {
		return "", errors.NewNotFoundError("user not found")
	}

	session, err := uc.gateway.CreateRenewalCharge(ctx, paymentgateway.CreateRenewalRequest{
		Amount: sub.MonthlyPrice(),
		Customer: paymentgateway.Customer{
			UserID:  owner.ID(),
			Name:    owner.Username(),
			Email:   owner.Email().String(),
			Phone:   owner.Phone(),
			Address: owner.Address(),
		},
	})
	if err != nil {
		uc.logger.Errorw("gateway renewal charge failed", "error", err, "user_id", userID)
		return "", err
	}

	if err := sub.ReplaceSessionToken(session.SessionToken); err != nil {
		return "", fmt.Errorf("failed to store renewal token: %w", err)
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to persist renewal token", "error", err, "user_id", userID)
		return "", fmt.Errorf("failed to persist renewal token: %w", err)
	}

	uc.logger.Infow("renewal charge opened",
		"user_id", userID,
		"subscription_sid", sub.SID(),
		"monthly_price", sub.MonthlyPrice(),
	)

	return session.PaymentPageURL, nil
}
