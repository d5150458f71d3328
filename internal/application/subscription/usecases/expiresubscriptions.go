package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/digitalcoban/coban/internal/application/payment/paymentgateway"
	"github.com/digitalcoban/coban/internal/domain/subscription"
	"github.com/digitalcoban/coban/internal/domain/user"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

// ExpireSubscriptionsUseCase is the nightly sweep: it finds active
// subscriptions whose paid period has lapsed, cancels the recurring
// charge at the gateway, and marks them expired. A failure on one row
// never stops the sweep; the row is retried on the next run. The
// notifier is optional and best-effort.
type ExpireSubscriptionsUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	userRepo         user.Repository
	gateway          paymentgateway.PaymentGateway
	notifier         ExpiryNotifier
	logger           logger.Interface
}

func NewExpireSubscriptionsUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	userRepo user.Repository,
	gateway paymentgateway.PaymentGateway,
	notifier ExpiryNotifier,
	logger logger.Interface,
) *ExpireSubscriptionsUseCase {
	return &ExpireSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		gateway:          gateway,
		notifier:         notifier,
		logger:           logger,
	}
}

// Execute runs one sweep and returns the number of subscriptions expired.
func (uc *ExpireSubscriptionsUseCase) Execute(ctx context.Context) (int, error) {
	lapsed, err := uc.subscriptionRepo.FindExpired(ctx)
	if err != nil {
		uc.logger.Errorw("failed to query lapsed subscriptions", "error", err)
		return 0, fmt.Errorf("failed to query lapsed subscriptions: %w", err)
	}
	if len(lapsed) == 0 {
		uc.logger.Debugw("expiry sweep found nothing to do")
		return 0, nil
	}

	expired := 0
	for _, sub := range lapsed {
		if err := uc.expireOne(ctx, sub); err != nil {
			uc.logger.Errorw("failed to expire subscription",
				"error", err,
				"subscription_sid", sub.SID(),
			)
			continue
		}
		expired++
	}

	uc.logger.Infow("expiry sweep finished", "found", len(lapsed), "expired", expired)
	return expired, nil
}

func (uc *ExpireSubscriptionsUseCase) expireOne(ctx context.Context, sub *subscription.Subscription) error {
	if ref := sub.GatewayRef(); ref != nil {
		// The row only flips once the recurring charge is gone at the
		// gateway. On failure it stays active and the next sweep retries.
		if err := uc.gateway.CancelRecurring(ctx, *ref); err != nil {
			return fmt.Errorf("failed to cancel recurring charge: %w", err)
		}
	}

	endedAt := time.Now()
	if end := sub.SubscriptionEnd(); end != nil {
		endedAt = *end
	}

	if err := sub.MarkAsExpired(); err != nil {
		return err
	}
	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		return fmt.Errorf("failed to persist expired subscription: %w", err)
	}

	uc.notify(ctx, sub, endedAt)
	return nil
}

func (uc *ExpireSubscriptionsUseCase) notify(ctx context.Context, sub *subscription.Subscription, endedAt time.Time) {
	if uc.notifier == nil {
		return
	}

	owner, err := uc.userRepo.GetByID(ctx, sub.UserID())
	if err != nil || owner == nil {
		uc.logger.Warnw("could not load owner for expiry notification",
			"error", err,
			"subscription_sid", sub.SID(),
		)
		return
	}

	if err := uc.notifier.NotifyExpired(ctx, owner.Email().String(), owner.Username(), endedAt); err != nil {
		uc.logger.Warnw("failed to send expiry notification",
			"error", err,
			"subscription_sid", sub.SID(),
		)
	}
}
