package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	subUsecases "github.com/digitalcoban/coban/internal/application/subscription/usecases"
	"github.com/digitalcoban/coban/internal/infrastructure/cache"
	"github.com/digitalcoban/coban/internal/infrastructure/config"
	"github.com/digitalcoban/coban/internal/infrastructure/database"
	"github.com/digitalcoban/coban/internal/infrastructure/email"
	"github.com/digitalcoban/coban/internal/infrastructure/payment"
	"github.com/digitalcoban/coban/internal/infrastructure/repository"
	"github.com/digitalcoban/coban/internal/infrastructure/scheduler"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting subscription expiry worker", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalw("failed to connect to redis", "error", err)
	}
	log.Infow("redis connection established", "address", cfg.Redis.GetAddr())

	subscriptionRepo := repository.NewSubscriptionRepository(database.Get(), log)
	userRepo := repository.NewUserRepository(database.Get(), log)
	gateway := payment.NewIyzicoGateway(cfg.Payment, log)
	notifier := email.NewSMTPEmailService(cfg.Email)

	expireUC := subUsecases.NewExpireSubscriptionsUseCase(
		subscriptionRepo, userRepo, gateway, notifier, log,
	)

	lockTTL := time.Duration(cfg.Subscription.ScanLockTTLSecs) * time.Second
	sweepLock := cache.NewSweepLock(redisClient, lockTTL)

	sweeper := scheduler.NewExpirySweeper(expireUC, sweepLock, cfg.Subscription.ScanCronSpec, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Run once on startup to clear any backlog from downtime
	log.Infow("running initial expiry sweep")
	sweeper.RunOnce(ctx)

	if err := sweeper.Start(ctx); err != nil {
		log.Fatalw("failed to start expiry sweeper", "error", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	log.Infow("received signal, shutting down", "signal", sig)

	sweeper.Stop()
	log.Infow("subscription expiry worker stopped")
}
