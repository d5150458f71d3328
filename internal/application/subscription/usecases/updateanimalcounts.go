package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/digitalcoban/coban/internal/domain/billing"
	"github.com/digitalcoban/coban/internal/domain/subscription"
	vo "github.com/digitalcoban/coban/internal/domain/subscription/valueobjects"
	"github.com/digitalcoban/coban/internal/shared/errors"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

type UpdateAnimalCountsCommand struct {
	UserID       uint
	AnimalCounts billing.Counts
}

// UpdateAnimalCountsUseCase reprices an active subscription when the herd
// composition changes. The new monthly price takes effect on the next
// renewal charge; the current paid period is untouched.
type UpdateAnimalCountsUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	calculator       *billing.Calculator
	logger           logger.Interface
}

func NewUpdateAnimalCountsUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	calculator *billing.Calculator,
	logger logger.Interface,
) *UpdateAnimalCountsUseCase {
	return &UpdateAnimalCountsUseCase{
		subscriptionRepo: subscriptionRepo,
		calculator:       calculator,
		logger:           logger,
	}
}

func (uc *UpdateAnimalCountsUseCase) Execute(ctx context.Context, cmd UpdateAnimalCountsCommand) (*subscription.Subscription, error) {
	sub, err := uc.subscriptionRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load subscription", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}
	if sub == nil {
		return nil, errors.NewNotFoundError("subscription not found")
	}

	switch sub.Status() {
	case vo.StatusExpired:
		return nil, errors.NewExpiredError("subscription has expired")
	case vo.StatusActive:
	default:
		return nil, errors.NewNotActiveError("subscription is not active")
	}
	// A lapsed row the nightly sweep has not flipped yet is still expired.
	if sub.IsLapsed(time.Now()) {
		return nil, errors.NewExpiredError("subscription period has ended")
	}

	monthlyPrice, err := uc.calculator.MonthlyPrice(cmd.AnimalCounts)
	if err != nil {
		return nil, err
	}

	if err := sub.UpdateAnimalCounts(cmd.AnimalCounts, monthlyPrice); err != nil {
		return nil, err
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to persist subscription", "error", err, "subscription_sid", sub.SID())
		return nil, fmt.Errorf("failed to persist subscription: %w", err)
	}

	uc.logger.Infow("animal counts updated",
		"subscription_sid", sub.SID(),
		"monthly_price", monthlyPrice,
	)

	return sub, nil
}
