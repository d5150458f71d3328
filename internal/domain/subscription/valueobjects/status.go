package valueobjects

// SubscriptionStatus is the stored lifecycle state of a subscription.
// The trial condition is not a status: it is derived from the trial
// window dates while the status is still StatusNone.
type SubscriptionStatus string

const (
	StatusNone    SubscriptionStatus = "none"
	StatusPending SubscriptionStatus = "pending"
	StatusActive  SubscriptionStatus = "active"
	StatusExpired SubscriptionStatus = "expired"
)

func (s SubscriptionStatus) String() string {
	return string(s)
}

// CanCheckout reports whether a new checkout session may be opened.
// Checkout is allowed from every state except active.
func (s SubscriptionStatus) CanCheckout() bool {
	return s != StatusActive
}

func (s SubscriptionStatus) CanTransitionTo(target SubscriptionStatus) bool {
	transitions := map[SubscriptionStatus][]SubscriptionStatus{
		StatusNone:    {StatusPending},
		StatusPending: {StatusPending, StatusActive},
		StatusActive:  {StatusActive, StatusExpired},
		StatusExpired: {StatusPending},
	}

	allowed, exists := transitions[s]
	if !exists {
		return false
	}

	for _, allowedStatus := range allowed {
		if allowedStatus == target {
			return true
		}
	}
	return false
}

var ValidStatuses = map[SubscriptionStatus]bool{
	StatusNone:    true,
	StatusPending: true,
	StatusActive:  true,
	StatusExpired: true,
}
