package usecases

import (
	"context"
	"fmt"

	"github.com/digitalcoban/coban/internal/domain/billing"
	"github.com/digitalcoban/coban/internal/domain/subscription"
	"github.com/digitalcoban/coban/internal/shared/errors"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

type CreateTrialCommand struct {
	UserID uint
	Counts billing.Counts
}

// CreateTrialUseCase opens the trial subscription that accompanies a new
// registration. Exactly one subscription exists per user for the life of
// the account.
type CreateTrialUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	calculator       *billing.Calculator
	trialDays        int
	logger           logger.Interface
}

func NewCreateTrialUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	calculator *billing.Calculator,
	trialDays int,
	logger logger.Interface,
) *CreateTrialUseCase {
	return &CreateTrialUseCase{
		subscriptionRepo: subscriptionRepo,
		calculator:       calculator,
		trialDays:        trialDays,
		logger:           logger,
	}
}

func (uc *CreateTrialUseCase) Execute(ctx context.Context, cmd CreateTrialCommand) (*subscription.Subscription, error) {
	existing, err := uc.subscriptionRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to check existing subscription", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to check existing subscription: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("subscription already exists for user")
	}

	monthlyPrice, err := uc.calculator.MonthlyPrice(cmd.Counts)
	if err != nil {
		return nil, err
	}

	sub, err := subscription.NewTrialSubscription(cmd.UserID, cmd.Counts, monthlyPrice, uc.trialDays)
	if err != nil {
		uc.logger.Errorw("failed to create trial subscription", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to create trial subscription: %w", err)
	}

	if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
		uc.logger.Errorw("failed to persist trial subscription", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to persist trial subscription: %w", err)
	}

	uc.logger.Infow("trial subscription created",
		"user_id", cmd.UserID,
		"subscription_sid", sub.SID(),
		"monthly_price", sub.MonthlyPrice(),
		"trial_end", sub.TrialEnd(),
	)

	return sub, nil
}
