package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/digitalcoban/coban/internal/application/payment/paymentgateway"
	"github.com/digitalcoban/coban/internal/domain/subscription"
	"github.com/digitalcoban/coban/internal/shared/errors"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

// VerifyCheckoutResult reports the verified outcome of a checkout
// session. Succeeded false means the payment is still pending or failed
// at the provider; no local state was changed and the caller may retry.
type VerifyCheckoutResult struct {
	Succeeded         bool
	SubscriptionStart *time.Time
	SubscriptionEnd   *time.Time
}

// VerifyCheckoutUseCase pulls the outcome of a checkout session from the
// gateway and activates the subscription on success. Verification is
// idempotent per session token: a replayed callback for an already
// activated token returns success without recomputing the period.
type VerifyCheckoutUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	gateway          paymentgateway.PaymentGateway
	periodYears      int
	logger           logger.Interface
}

func NewVerifyCheckoutUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	gateway paymentgateway.PaymentGateway,
	periodYears int,
	logger logger.Interface,
) *VerifyCheckoutUseCase {
	return &VerifyCheckoutUseCase{
		subscriptionRepo: subscriptionRepo,
		gateway:          gateway,
		periodYears:      periodYears,
		logger:           logger,
	}
}

func (uc *VerifyCheckoutUseCase) Execute(ctx context.Context, token string) (*VerifyCheckoutResult, error) {
	if token == "" {
		return nil, errors.NewValidationError("session token is required")
	}

	sub, err := uc.subscriptionRepo.GetBySessionToken(ctx, token)
	if err != nil {
		uc.logger.Errorw("failed to load subscription by token", "error", err)
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}
	if sub == nil {
		return nil, errors.NewNotFoundError("no subscription matches the session token")
	}

	// Replay guard: the token already produced an activation.
	if sub.ActivatedWith(token) {
		uc.logger.Infow("checkout verification replayed for active subscription",
			"subscription_sid", sub.SID(),
		)
		return &VerifyCheckoutResult{
			Succeeded:         true,
			SubscriptionStart: sub.SubscriptionStart(),
			SubscriptionEnd:   sub.SubscriptionEnd(),
		}, nil
	}

	outcome, err := uc.gateway.RetrieveOutcome(ctx, token)
	if err != nil {
		uc.logger.Errorw("gateway outcome retrieval failed", "error", err, "subscription_sid", sub.SID())
		return nil, err
	}

	if !outcome.Succeeded {
		uc.logger.Infow("checkout not completed at gateway",
			"subscription_sid", sub.SID(),
			"gateway_status", outcome.RawStatus,
		)
		return &VerifyCheckoutResult{Succeeded: false}, nil
	}

	now := time.Now().UTC()
	if err := sub.ActivateFromCheckout(now, uc.periodYears); err != nil {
		uc.logger.Errorw("failed to activate subscription", "error", err, "subscription_sid", sub.SID())
		return nil, errors.NewConflictError("cannot activate subscription", err.Error())
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to persist activated subscription", "error", err, "subscription_sid", sub.SID())
		return nil, fmt.Errorf("failed to persist activated subscription: %w", err)
	}

	uc.logger.Infow("subscription activated",
		"subscription_sid", sub.SID(),
		"subscription_start", sub.SubscriptionStart(),
		"subscription_end", sub.SubscriptionEnd(),
	)

	return &VerifyCheckoutResult{
		Succeeded:         true,
		SubscriptionStart: sub.SubscriptionStart(),
		SubscriptionEnd:   sub.SubscriptionEnd(),
	}, nil
}
