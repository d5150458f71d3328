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

// SubscriptionStatusResult is the read model surfaced to clients after
// login and on the status endpoint.
type SubscriptionStatusResult struct {
	SID               string
	Status            vo.SubscriptionStatus
	AnimalCounts      billing.Counts
	MonthlyPrice      int64
	TrialStart        time.Time
	TrialEnd          time.Time
	InTrial           bool
	NeedsPayment      bool
	SubscriptionStart *time.Time
	SubscriptionEnd   *time.Time
}

type GetStatusUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	logger           logger.Interface
}

func NewGetStatusUseCase(subscriptionRepo subscription.SubscriptionRepository, logger logger.Interface) *GetStatusUseCase {
	return &GetStatusUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *GetStatusUseCase) Execute(ctx context.Context, userID uint) (*SubscriptionStatusResult, error) {
	sub, err := uc.subscriptionRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load subscription", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}
	if sub == nil {
		return nil, errors.NewNotFoundError("subscription not found")
	}

	now := time.Now()
	return &SubscriptionStatusResult{
		SID:               sub.SID(),
		Status:            sub.Status(),
		AnimalCounts:      sub.AnimalCounts(),
		MonthlyPrice:      sub.MonthlyPrice(),
		TrialStart:        sub.TrialStart(),
		TrialEnd:          sub.TrialEnd(),
		InTrial:           sub.IsInTrial(now),
		NeedsPayment:      sub.NeedsPayment(now),
		SubscriptionStart: sub.SubscriptionStart(),
		SubscriptionEnd:   sub.SubscriptionEnd(),
	}, nil
}
