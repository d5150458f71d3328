package subscription

import "context"

// SubscriptionRepository is the persistence port for the aggregate.
// Lookup methods return nil without error when no row matches; callers
// decide whether a miss is an error.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *Subscription) error
	// Update persists the aggregate using its version for optimistic
	// locking and fails when a concurrent writer got there first.
	Update(ctx context.Context, sub *Subscription) error
	GetByUserID(ctx context.Context, userID uint) (*Subscription, error)
	GetBySessionToken(ctx context.Context, token string) (*Subscription, error)
	// FindExpired returns subscriptions still marked active whose paid
	// period end has passed.
	FindExpired(ctx context.Context) ([]*Subscription, error)
}
