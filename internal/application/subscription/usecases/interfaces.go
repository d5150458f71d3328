package usecases

import (
	"context"
	"time"
)

// ExpiryNotifier informs a user that the expiry sweep closed their
// subscription. Implementations must be safe to skip: notification
// failures never fail the sweep.
type ExpiryNotifier interface {
	NotifyExpired(ctx context.Context, email, username string, endedAt time.Time) error
}
