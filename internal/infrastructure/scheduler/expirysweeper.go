package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	subscriptionUsecases "github.com/digitalcoban/coban/internal/application/subscription/usecases"
	"github.com/digitalcoban/coban/internal/infrastructure/cache"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

// ExpirySweeper runs the daily subscription expiry sweep on a cron
// schedule. The sweep marks lapsed subscriptions expired, cancels their
// recurring billing and notifies the owners. A Redis lock keeps the
// sweep single-flight across worker instances.
type ExpirySweeper struct {
	cron      *cron.Cron
	expireUC  *subscriptionUsecases.ExpireSubscriptionsUseCase
	sweepLock *cache.SweepLock
	spec      string
	logger    logger.Interface
}

// NewExpirySweeper creates a new ExpirySweeper. spec is a standard cron
// expression, e.g. "5 0 * * *" for five past midnight.
func NewExpirySweeper(
	expireUC *subscriptionUsecases.ExpireSubscriptionsUseCase,
	sweepLock *cache.SweepLock,
	spec string,
	logger logger.Interface,
) *ExpirySweeper {
	return &ExpirySweeper{
		cron:      cron.New(),
		expireUC:  expireUC,
		sweepLock: sweepLock,
		spec:      spec,
		logger:    logger,
	}
}

// Start registers the sweep job and starts the cron loop
func (s *ExpirySweeper) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() {
		s.RunOnce(ctx)
	}); err != nil {
		return fmt.Errorf("failed to schedule expiry sweep: %w", err)
	}

	s.cron.Start()
	s.logger.Infow("expiry sweeper started", "spec", s.spec)
	return nil
}

// Stop stops the cron loop and waits for a running sweep to finish
func (s *ExpirySweeper) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.logger.Infow("expiry sweeper stopped")
}

// RunOnce executes a single sweep under the distributed lock. It is
// called by the cron job and directly on worker startup.
func (s *ExpirySweeper) RunOnce(ctx context.Context) {
	release, acquired, err := s.sweepLock.Acquire(ctx)
	if err != nil {
		s.logger.Errorw("failed to acquire sweep lock", "error", err)
		return
	}
	if !acquired {
		s.logger.Infow("expiry sweep already running elsewhere, skipping")
		return
	}
	defer func() {
		if err := release(ctx); err != nil {
			s.logger.Warnw("failed to release sweep lock", "error", err)
		}
	}()

	startTime := time.Now()

	expiredCount, err := s.expireUC.Execute(ctx)
	if err != nil {
		s.logger.Errorw("expiry sweep failed",
			"error", err,
			"duration", time.Since(startTime))
		return
	}

	if expiredCount > 0 {
		s.logger.Infow("expiry sweep completed",
			"expired", expiredCount,
			"duration", time.Since(startTime))
	} else {
		s.logger.Debugw("expiry sweep found nothing to do",
			"duration", time.Since(startTime))
	}
}
