package paymentgateway

import (
	"context"
	"fmt"
	"time"
)

// MockGateway is an in-memory gateway used in development mode and tests.
type MockGateway struct {
	shouldSucceed bool
}

func NewMockGateway(shouldSucceed bool) *MockGateway {
	return &MockGateway{
		shouldSucceed: shouldSucceed,
	}
}

var _ PaymentGateway = (*MockGateway)(nil)

func (m *MockGateway) CreateCheckoutSession(ctx context.Context, req CreateCheckoutRequest) (*CheckoutSession, error) {
	token := fmt.Sprintf("mock_chk_%d_%d", req.Customer.UserID, time.Now().UnixNano())
	return &CheckoutSession{
		PaymentPageURL: fmt.Sprintf("https://sandbox.example.com/pay?token=%s", token),
		SessionToken:   token,
		GatewayRef:     fmt.Sprintf("mock_ref_%d", req.Customer.UserID),
	}, nil
}

func (m *MockGateway) RetrieveOutcome(ctx context.Context, token string) (*PaymentOutcome, error) {
	status := "SUCCESS"
	if !m.shouldSucceed {
		status = "FAILURE"
	}
	return &PaymentOutcome{
		Succeeded: m.shouldSucceed,
		RawStatus: status,
	}, nil
}

func (m *MockGateway) CreateRenewalCharge(ctx context.Context, req CreateRenewalRequest) (*CheckoutSession, error) {
	token := fmt.Sprintf("mock_rnw_%d_%d", req.Customer.UserID, time.Now().UnixNano())
	return &CheckoutSession{
		PaymentPageURL: fmt.Sprintf("https://sandbox.example.com/pay?token=%s", token),
		SessionToken:   token,
	}, nil
}

func (m *MockGateway) CancelRecurring(ctx context.Context, gatewayRef string) error {
	return nil
}
