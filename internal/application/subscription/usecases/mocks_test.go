package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/digitalcoban/coban/internal/application/payment/paymentgateway"
	"github.com/digitalcoban/coban/internal/domain/billing"
	"github.com/digitalcoban/coban/internal/domain/subscription"
	vo "github.com/digitalcoban/coban/internal/domain/subscription/valueobjects"
	"github.com/digitalcoban/coban/internal/domain/user"
	uservo "github.com/digitalcoban/coban/internal/domain/user/valueobjects"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

type mockSubscriptionRepository struct {
	CreateFunc            func(ctx context.Context, sub *subscription.Subscription) error
	UpdateFunc            func(ctx context.Context, sub *subscription.Subscription) error
	GetByUserIDFunc       func(ctx context.Context, userID uint) (*subscription.Subscription, error)
	GetBySessionTokenFunc func(ctx context.Context, token string) (*subscription.Subscription, error)
	FindExpiredFunc       func(ctx context.Context) ([]*subscription.Subscription, error)
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) GetByUserID(ctx context.Context, userID uint) (*subscription.Subscription, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) GetBySessionToken(ctx context.Context, token string) (*subscription.Subscription, error) {
	if m.GetBySessionTokenFunc != nil {
		return m.GetBySessionTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) FindExpired(ctx context.Context) ([]*subscription.Subscription, error) {
	if m.FindExpiredFunc != nil {
		return m.FindExpiredFunc(ctx)
	}
	return nil, nil
}

type mockUserRepository struct {
	CreateFunc        func(ctx context.Context, u *user.User) error
	GetByIDFunc       func(ctx context.Context, id uint) (*user.User, error)
	GetByUUIDFunc     func(ctx context.Context, uuid string) (*user.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	UpdateFunc        func(ctx context.Context, u *user.User) error
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUUID(ctx context.Context, uuid string) (*user.User, error) {
	if m.GetByUUIDFunc != nil {
		return m.GetByUUIDFunc(ctx, uuid)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

type mockPaymentGateway struct {
	CreateCheckoutSessionFunc func(ctx context.Context, req paymentgateway.CreateCheckoutRequest) (*paymentgateway.CheckoutSession, error)
	RetrieveOutcomeFunc       func(ctx context.Context, token string) (*paymentgateway.PaymentOutcome, error)
	CreateRenewalChargeFunc   func(ctx context.Context, req paymentgateway.CreateRenewalRequest) (*paymentgateway.CheckoutSession, error)
	CancelRecurringFunc       func(ctx context.Context, gatewayRef string) error
}

func (m *mockPaymentGateway) CreateCheckoutSession(ctx context.Context, req paymentgateway.CreateCheckoutRequest) (*paymentgateway.CheckoutSession, error) {
	if m.CreateCheckoutSessionFunc != nil {
		return m.CreateCheckoutSessionFunc(ctx, req)
	}
	return &paymentgateway.CheckoutSession{
		PaymentPageURL: "https://pay.example.com/chk",
		SessionToken:   "chk_token",
		GatewayRef:     "gw_ref",
	}, nil
}

func (m *mockPaymentGateway) RetrieveOutcome(ctx context.Context, token string) (*paymentgateway.PaymentOutcome, error) {
	if m.RetrieveOutcomeFunc != nil {
		return m.RetrieveOutcomeFunc(ctx, token)
	}
	return &paymentgateway.PaymentOutcome{Succeeded: true, RawStatus: "SUCCESS"}, nil
}

func (m *mockPaymentGateway) CreateRenewalCharge(ctx context.Context, req paymentgateway.CreateRenewalRequest) (*paymentgateway.CheckoutSession, error) {
	if m.CreateRenewalChargeFunc != nil {
		return m.CreateRenewalChargeFunc(ctx, req)
	}
	return &paymentgateway.CheckoutSession{
		PaymentPageURL: "https://pay.example.com/rnw",
		SessionToken:   "rnw_token",
	}, nil
}

func (m *mockPaymentGateway) CancelRecurring(ctx context.Context, gatewayRef string) error {
	if m.CancelRecurringFunc != nil {
		return m.CancelRecurringFunc(ctx, gatewayRef)
	}
	return nil
}

type mockExpiryNotifier struct {
	NotifyExpiredFunc func(ctx context.Context, email, username string, endedAt time.Time) error
}

func (m *mockExpiryNotifier) NotifyExpired(ctx context.Context, email, username string, endedAt time.Time) error {
	if m.NotifyExpiredFunc != nil {
		return m.NotifyExpiredFunc(ctx, email, username, endedAt)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

func testCounts() billing.Counts {
	return billing.Counts{billing.AnimalTypeLarge: 2, billing.AnimalTypeSmall: 3}
}

func testUser(t *testing.T) *user.User {
	t.Helper()
	email, err := uservo.NewEmail("farmer@example.com")
	require.NoError(t, err)
	u, err := user.ReconstructUser(user.UserReconstructParams{
		ID:           1,
		UUID:         "7a1e7d3e-0000-0000-0000-000000000001",
		Username:     "farmer",
		Email:        email,
		Phone:        "+905551112233",
		Address:      "Konya",
		PasswordHash: "$2a$10$hash",
		Version:      1,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	})
	require.NoError(t, err)
	return u
}

func trialSubscription(t *testing.T, userID uint) *subscription.Subscription {
	t.Helper()
	sub, err := subscription.NewTrialSubscription(userID, testCounts(), 4500, subscription.DefaultTrialDays)
	require.NoError(t, err)
	require.NoError(t, sub.SetID(10))
	return sub
}

func pendingSubscription(t *testing.T, userID uint, token string) *subscription.Subscription {
	t.Helper()
	sub := trialSubscription(t, userID)
	require.NoError(t, sub.BeginCheckout(token, "gw_ref"))
	return sub
}

func activeSubscription(t *testing.T, userID uint, token string) *subscription.Subscription {
	t.Helper()
	sub := pendingSubscription(t, userID, token)
	require.NoError(t, sub.ActivateFromCheckout(time.Now().UTC(), subscription.DefaultPeriodYears))
	return sub
}

func lapsedActiveSubscription(t *testing.T, id, userID uint) *subscription.Subscription {
	t.Helper()
	start := time.Now().AddDate(-1, 0, -10)
	end := time.Now().AddDate(0, 0, -3)
	token := "chk_old"
	ref := "gw_ref"
	sub, err := subscription.ReconstructSubscription(subscription.SubscriptionReconstructParams{
		ID:                id,
		SID:               "sub_lapsed",
		UserID:            userID,
		AnimalCounts:      testCounts(),
		MonthlyPrice:      4500,
		Status:            vo.StatusActive,
		TrialStart:        start.AddDate(0, 0, -90),
		TrialEnd:          start,
		SubscriptionStart: &start,
		SubscriptionEnd:   &end,
		SessionToken:      &token,
		GatewayRef:        &ref,
		Version:           3,
		CreatedAt:         start,
		UpdatedAt:         end,
	})
	require.NoError(t, err)
	return sub
}
