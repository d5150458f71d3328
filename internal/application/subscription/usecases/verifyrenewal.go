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

// VerifyRenewalResult reports the verified outcome of a renewal charge.
type VerifyRenewalResult struct {
	Succeeded         bool
	SubscriptionStart *time.Time
	SubscriptionEnd   *time.Time
}

// VerifyRenewalUseCase pulls the outcome of a renewal charge and extends
// the paid period on success: the new period starts one second after the
// old end and runs for one more period. The session token is consumed on
// success, so a replayed verification finds no matching row instead of
// extending twice.
type VerifyRenewalUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	gateway          paymentgateway.PaymentGateway
	periodYears      int
	logger           logger.Interface
}

func NewVerifyRenewalUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	gateway paymentgateway.PaymentGateway,
	periodYears int,
	logger logger.Interface,
) *VerifyRenewalUseCase {
	return &VerifyRenewalUseCase{
		subscriptionRepo: subscriptionRepo,
		gateway:          gateway,
		periodYears:      periodYears,
		logger:           logger,
	}
}

func (uc *VerifyRenewalUseCase) Execute(ctx context.Context, token string) (*VerifyRenewalResult, error) {
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

	outcome, err := uc.gateway.RetrieveOutcome(ctx, token)
	if err != nil {
		uc.logger.Errorw("gateway outcome retrieval failed", "error", err, "subscription_sid", sub.SID())
		return nil, err
	}

	if !outcome.Succeeded {
		uc.logger.Infow("renewal not completed at gateway",
			"subscription_sid", sub.SID(),
			"gateway_status", outcome.RawStatus,
		)
		return &VerifyRenewalResult{Succeeded: false}, nil
	}

	if err := sub.RenewPeriod(uc.periodYears); err != nil {
		uc.logger.Errorw("failed to renew subscription period", "error", err, "subscription_sid", sub.SID())
		return nil, errors.NewNotActiveError("cannot renew subscription", err.Error())
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to persist renewed subscription", "error", err, "subscription_sid", sub.SID())
		return nil, fmt.Errorf("failed to persist renewed subscription: %w", err)
	}

	uc.logger.Infow("subscription renewed",
		"subscription_sid", sub.SID(),
		"subscription_start", sub.SubscriptionStart(),
		"subscription_end", sub.SubscriptionEnd(),
	)

	return &VerifyRenewalResult{
		Succeeded:         true,
		SubscriptionStart: sub.SubscriptionStart(),
		SubscriptionEnd:   sub.SubscriptionEnd(),
	}, nil
}
