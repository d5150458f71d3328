package usecases

import (
	"context"
	"fmt"

	"github.com/digitalcoban/coban/internal/application/payment/paymentgateway"
	"github.com/digitalcoban/coban/internal/domain/subscription"
	"github.com/digitalcoban/coban/internal/domain/user"
	"github.com/digitalcoban/coban/internal/shared/errors"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

// BeginCheckoutUseCase opens a recurring checkout session at the gateway
// and moves the subscription to pending. Local state is only touched
// after the gateway call succeeds, so a gateway failure leaves the
// subscription exactly as it was.
type BeginCheckoutUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	userRepo         user.Repository
	gateway          paymentgateway.PaymentGateway
	logger           logger.Interface
}

func NewBeginCheckoutUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	userRepo user.Repository,
	gateway paymentgateway.PaymentGateway,
	logger logger.Interface,
) *BeginCheckoutUseCase {
	return &BeginCheckoutUseCase{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		gateway:          gateway,
		logger:           logger,
	}
}

// Execute returns the gateway payment page URL for the user to complete
// the checkout.
func (uc *BeginCheckoutUseCase) Execute(ctx context.Context, userID uint) (string, error) {
	sub, err := uc.subscriptionRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load subscription", "error", err, "user_id", userID)
		return "", fmt.Errorf("failed to load subscription: %w", err)
	}
	if sub == nil {
		return "", errors.NewNotFoundError("subscription not found")
	}

	if !sub.Status().CanCheckout() {
		return "", errors.NewConflictError("subscription is already active")
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

	session, err := uc.gateway.CreateCheckoutSession(ctx, paymentgateway.CreateCheckoutRequest{
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
		uc.logger.Errorw("gateway checkout session failed", "error", err, "user_id", userID)
		return "", err
	}

	if err := sub.BeginCheckout(session.SessionToken, session.GatewayRef); err != nil {
		uc.logger.Errorw("failed to begin checkout", "error", err, "user_id", userID, "status", sub.Status())
		return "", errors.NewConflictError("cannot begin checkout", err.Error())
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to persist pending subscription", "error", err, "user_id", userID)
		return "", fmt.Errorf("failed to persist pending subscription: %w", err)
	}

	uc.logger.Infow("checkout session opened",
		"user_id", userID,
		"subscription_sid", sub.SID(),
		"monthly_price", sub.MonthlyPrice(),
	)

	return session.PaymentPageURL, nil
}
