package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// sweepLockKey is the Redis key guarding the expiry sweep so only one
// worker instance runs the scan at a time.
const sweepLockKey = "subscription:expiry_sweep:lock"

// releaseScript deletes the lock only when the stored token matches the
// holder's token, so a worker cannot release a lock it no longer owns.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`)

// SweepLock provides a Redis-based mutual exclusion lock for the daily
// subscription expiry sweep
type SweepLock struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSweepLock creates a new SweepLock instance
// The TTL bounds how long a crashed worker can hold the lock
func NewSweepLock(client *redis.Client, ttl time.Duration) *SweepLock {
	return &SweepLock{client: client, ttl: ttl}
}

// Acquire attempts to take the sweep lock. It returns a release function
// and true when the lock was acquired, or false when another worker
// currently holds it.
func (l *SweepLock) Acquire(ctx context.Context) (func(context.Context) error, bool, error) {
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, sweepLockKey, token, l.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to acquire sweep lock: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	release := func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{sweepLockKey}, token).Err(); err != nil {
			return fmt.Errorf("failed to release sweep lock: %w", err)
		}
		return nil
	}
	return release, true, nil
}
