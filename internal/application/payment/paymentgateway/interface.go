// Package paymentgateway defines the contract with the hosted checkout
// provider. The engine only ever talks to this port; the concrete REST
// adapter lives in infrastructure.
package paymentgateway

import "context"

// PaymentGateway is the port for the recurring-billing provider.
// Implementations return a gateway error (errors.ErrorTypeGateway) on
// transport or provider failure.
type PaymentGateway interface {
	// CreateCheckoutSession opens a recurring monthly checkout for the
	// given amount and returns the hosted payment page.
	CreateCheckoutSession(ctx context.Context, req CreateCheckoutRequest) (*CheckoutSession, error)

	// RetrieveOutcome fetches the verified result of a checkout or
	// renewal session by its token. This is a pull: callback payloads
	// from the provider are never trusted directly.
	RetrieveOutcome(ctx context.Context, token string) (*PaymentOutcome, error)

	// CreateRenewalCharge opens a one-off charge extending an existing
	// subscription by one period.
	CreateRenewalCharge(ctx context.Context, req CreateRenewalRequest) (*CheckoutSession, error)

	// CancelRecurring cancels the recurring-billing object identified
	// by the gateway reference.
	CancelRecurring(ctx context.Context, gatewayRef string) error
}

// Customer carries the buyer details the provider requires on every
// session.
type Customer struct {
	UserID  uint
	Name    string
	Email   string
	Phone   string
	Address string
}

// CreateCheckoutRequest contains the data for a recurring checkout session.
type CreateCheckoutRequest struct {
	// Amount is the monthly price in whole TRY.
	Amount   int64
	Customer Customer
}

// CreateRenewalRequest contains the data for a one-off renewal charge.
type CreateRenewalRequest struct {
	Amount   int64
	Customer Customer
}

// CheckoutSession identifies a hosted payment flow at the provider.
type CheckoutSession struct {
	// PaymentPageURL is where the user completes the payment.
	PaymentPageURL string
	// SessionToken correlates the later outcome retrieval.
	SessionToken string
	// GatewayRef is the recurring-billing reference, empty for one-off
	// renewal charges.
	GatewayRef string
}

// PaymentOutcome is the verified result of a session.
type PaymentOutcome struct {
	Succeeded bool
	// RawStatus is the provider's status string, passed through for
	// logging only.
	RawStatus string
}
