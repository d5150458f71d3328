package subscription

import (
	"fmt"
	"time"

	"github.com/digitalcoban/coban/internal/domain/billing"
	vo "github.com/digitalcoban/coban/internal/domain/subscription/valueobjects"
	"github.com/digitalcoban/coban/internal/shared/id"
)

// DefaultTrialDays is the length of the free trial window granted at
// registration.
const DefaultTrialDays = 90

// DefaultPeriodYears is the length of a paid subscription period.
const DefaultPeriodYears = 1

// Subscription is the aggregate root for a user's billing record.
// Every user owns exactly one subscription for the life of the account.
type Subscription struct {
	id                uint
	sid               string
	userID            uint
	animalCounts      billing.Counts
	monthlyPrice      int64
	status            vo.SubscriptionStatus
	trialStart        time.Time
	trialEnd          time.Time
	subscriptionStart *time.Time
	subscriptionEnd   *time.Time
	sessionToken      *string
	gatewayRef        *string
	version           int
	createdAt         time.Time
	updatedAt         time.Time
}

// NewTrialSubscription creates the subscription row that accompanies a new
// user registration. The trial window starts immediately; no payment state
// exists yet.
func NewTrialSubscription(userID uint, counts billing.Counts, monthlyPrice int64, trialDays int) (*Subscription, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if monthlyPrice <= 0 {
		return nil, fmt.Errorf("monthly price must be positive")
	}
	if trialDays <= 0 {
		trialDays = DefaultTrialDays
	}

	sid, err := id.NewSubscriptionSID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate subscription SID: %w", err)
	}

	now := time.Now().UTC()
	return &Subscription{
		sid:          sid,
		userID:       userID,
		animalCounts: cloneCounts(counts),
		monthlyPrice: monthlyPrice,
		status:       vo.StatusNone,
		trialStart:   now,
		trialEnd:     now.AddDate(0, 0, trialDays),
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// SubscriptionReconstructParams carries the persisted state of a
// subscription back into the domain.
type SubscriptionReconstructParams struct {
	ID                uint
	SID               string
	UserID            uint
	AnimalCounts      billing.Counts
	MonthlyPrice      int64
	Status            vo.SubscriptionStatus
	TrialStart        time.Time
	TrialEnd          time.Time
	SubscriptionStart *time.Time
	SubscriptionEnd   *time.Time
	SessionToken      *string
	GatewayRef        *string
	Version           int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ReconstructSubscription rebuilds a subscription from persistence.
func ReconstructSubscription(p SubscriptionReconstructParams) (*Subscription, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if p.UserID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !vo.ValidStatuses[p.Status] {
		return nil, fmt.Errorf("invalid subscription status: %s", p.Status)
	}

	return &Subscription{
		id:                p.ID,
		sid:               p.SID,
		userID:            p.UserID,
		animalCounts:      cloneCounts(p.AnimalCounts),
		monthlyPrice:      p.MonthlyPrice,
		status:            p.Status,
		trialStart:        p.TrialStart,
		trialEnd:          p.TrialEnd,
		subscriptionStart: p.SubscriptionStart,
		subscriptionEnd:   p.SubscriptionEnd,
		sessionToken:      p.SessionToken,
		gatewayRef:        p.GatewayRef,
		version:           p.Version,
		createdAt:         p.CreatedAt,
		updatedAt:         p.UpdatedAt,
	}, nil
}

func cloneCounts(counts billing.Counts) billing.Counts {
	cloned := make(billing.Counts, len(counts))
	for t, c := range counts {
		cloned[t] = c
	}
	return cloned
}

// ID returns the subscription ID
func (s *Subscription) ID() uint {
	return s.id
}

// SID returns the public subscription identifier
func (s *Subscription) SID() string {
	return s.sid
}

// UserID returns the owning user ID
func (s *Subscription) UserID() uint {
	return s.userID
}

// AnimalCounts returns a copy of the per-type head counts
func (s *Subscription) AnimalCounts() billing.Counts {
	return cloneCounts(s.animalCounts)
}

// MonthlyPrice returns the current monthly amount
func (s *Subscription) MonthlyPrice() int64 {
	return s.monthlyPrice
}

// Status returns the stored lifecycle status
func (s *Subscription) Status() vo.SubscriptionStatus {
	return s.status
}

// TrialStart returns when the trial window opened
func (s *Subscription) TrialStart() time.Time {
	return s.trialStart
}

// TrialEnd returns when the trial window closes
func (s *Subscription) TrialEnd() time.Time {
	return s.trialEnd
}

// SubscriptionStart returns the paid period start, nil before activation
func (s *Subscription) SubscriptionStart() *time.Time {
	return s.subscriptionStart
}

// SubscriptionEnd returns the paid period end, nil before activation
func (s *Subscription) SubscriptionEnd() *time.Time {
	return s.subscriptionEnd
}

// SessionToken returns the gateway checkout token of the most recent
// checkout or renewal attempt
func (s *Subscription) SessionToken() *string {
	return s.sessionToken
}

// GatewayRef returns the recurring-billing reference at the gateway
func (s *Subscription) GatewayRef() *string {
	return s.gatewayRef
}

// Version returns the aggregate version for optimistic locking
func (s *Subscription) Version() int {
	return s.version
}

// CreatedAt returns when the subscription was created
func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns when the subscription was last updated
func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

// SetID sets the subscription ID (only for persistence layer use)
func (s *Subscription) SetID(newID uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if newID == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = newID
	return nil
}

// IsInTrial reports whether the given instant falls inside the trial window.
func (s *Subscription) IsInTrial(now time.Time) bool {
	return !now.Before(s.trialStart) && !now.After(s.trialEnd)
}

// NeedsPayment reports whether the account must be pushed to checkout:
// no active subscription and the trial window has lapsed.
func (s *Subscription) NeedsPayment(now time.Time) bool {
	return s.status != vo.StatusActive && now.After(s.trialEnd)
}

// IsLapsed reports whether an activated subscription has run past its
// paid period end.
func (s *Subscription) IsLapsed(now time.Time) bool {
	return s.subscriptionEnd != nil && now.After(*s.subscriptionEnd)
}

// BeginCheckout moves the subscription into the pending state for a fresh
// checkout session. The previous session token is replaced and the paid
// window is cleared until the gateway confirms payment.
func (s *Subscription) BeginCheckout(sessionToken, gatewayRef string) error {
	if sessionToken == "" {
		return fmt.Errorf("session token is required")
	}
	if !s.status.CanTransitionTo(vo.StatusPending) {
		return fmt.Errorf("cannot begin checkout with status %s", s.status)
	}

	s.status = vo.StatusPending
	s.sessionToken = &sessionToken
	if gatewayRef != "" {
		s.gatewayRef = &gatewayRef
	}
	s.subscriptionStart = nil
	s.subscriptionEnd = nil
	s.updatedAt = time.Now().UTC()
	s.version++

	return nil
}

// ActivatedWith reports whether the subscription is already active for the
// given session token. Used to make checkout verification idempotent: a
// replayed callback must not extend the period a second time.
func (s *Subscription) ActivatedWith(token string) bool {
	return s.status == vo.StatusActive && s.sessionToken != nil && *s.sessionToken == token
}

// ActivateFromCheckout turns a confirmed checkout into an active paid
// period. When the payment lands inside the trial window the paid period
// is appended to the trial (end = trialEnd + periodYears), otherwise it
// runs from now. The start is always now.
func (s *Subscription) ActivateFromCheckout(now time.Time, periodYears int) error {
	if !s.status.CanTransitionTo(vo.StatusActive) {
		return fmt.Errorf("cannot activate subscription with status %s", s.status)
	}
	if periodYears <= 0 {
		periodYears = DefaultPeriodYears
	}

	var end time.Time
	if s.IsInTrial(now) {
		end = s.trialEnd.AddDate(periodYears, 0, 0)
	} else {
		end = now.AddDate(periodYears, 0, 0)
	}

	start := now
	s.status = vo.StatusActive
	s.subscriptionStart = &start
	s.subscriptionEnd = &end
	s.updatedAt = time.Now().UTC()
	s.version++

	return nil
}

// ReplaceSessionToken stores the token of a newly opened renewal charge
// without touching the lifecycle status. Renewal is only confirmed on
// verification.
func (s *Subscription) ReplaceSessionToken(sessionToken string) error {
	if sessionToken == "" {
		return fmt.Errorf("session token is required")
	}

	s.sessionToken = &sessionToken
	s.updatedAt = time.Now().UTC()
	s.version++

	return nil
}

// RenewPeriod extends a confirmed renewal: the new period starts one
// second after the old end and runs for periodYears. The session token
// is consumed so a replayed verification cannot extend the period twice.
func (s *Subscription) RenewPeriod(periodYears int) error {
	if s.status != vo.StatusActive {
		return fmt.Errorf("cannot renew subscription with status %s", s.status)
	}
	if s.subscriptionEnd == nil {
		return fmt.Errorf("subscription has no period end to renew from")
	}
	if periodYears <= 0 {
		periodYears = DefaultPeriodYears
	}

	newStart := s.subscriptionEnd.Add(time.Second)
	newEnd := newStart.AddDate(periodYears, 0, 0)

	s.subscriptionStart = &newStart
	s.subscriptionEnd = &newEnd
	s.sessionToken = nil
	s.updatedAt = time.Now().UTC()
	s.version++

	return nil
}

// UpdateAnimalCounts replaces the head counts and the derived monthly
// price. Status and period dates are untouched; the new amount takes
// effect at the next gateway billing cycle.
func (s *Subscription) UpdateAnimalCounts(counts billing.Counts, monthlyPrice int64) error {
	if monthlyPrice <= 0 {
		return fmt.Errorf("monthly price must be positive")
	}

	s.animalCounts = cloneCounts(counts)
	s.monthlyPrice = monthlyPrice
	s.updatedAt = time.Now().UTC()
	s.version++

	return nil
}

// MarkAsExpired flips a lapsed active subscription to expired.
func (s *Subscription) MarkAsExpired() error {
	if s.status == vo.StatusExpired {
		return nil
	}
	if !s.status.CanTransitionTo(vo.StatusExpired) {
		return fmt.Errorf("cannot mark subscription as expired with status %s", s.status)
	}

	s.status = vo.StatusExpired
	s.updatedAt = time.Now().UTC()
	s.version++

	return nil
}

// Validate performs domain-level validation
func (s *Subscription) Validate() error {
	if s.userID == 0 {
		return fmt.Errorf("user ID is required")
	}
	if !vo.ValidStatuses[s.status] {
		return fmt.Errorf("invalid status: %s", s.status)
	}
	if s.trialEnd.Before(s.trialStart) {
		return fmt.Errorf("trial end must be after trial start")
	}
	if s.status == vo.StatusActive {
		if s.subscriptionEnd == nil || s.subscriptionStart == nil {
			return fmt.Errorf("active subscription must have a paid period")
		}
		if s.subscriptionEnd.Before(*s.subscriptionStart) {
			return fmt.Errorf("subscription end must be after subscription start")
		}
	}
	if s.status == vo.StatusPending {
		if s.sessionToken == nil || *s.sessionToken == "" {
			return fmt.Errorf("pending subscription must have a session token")
		}
		if s.subscriptionStart != nil || s.subscriptionEnd != nil {
			return fmt.Errorf("pending subscription must not have a paid period")
		}
	}
	return nil
}
