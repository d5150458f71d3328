package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/digitalcoban/coban/internal/application/payment/paymentgateway"
	"github.com/digitalcoban/coban/internal/shared/config"
	"github.com/digitalcoban/coban/internal/shared/errors"
	"github.com/digitalcoban/coban/internal/shared/logger"
)

const (
	subscriptionPlanPath      = "/v2/subscription/pricing-plans"
	subscriptionCreatePath    = "/v2/subscription/subscriptions"
	subscriptionCancelFmt     = "/v2/subscription/subscriptions/%s/cancel"
	checkoutFormInitPath      = "/payment/iyzipos/checkoutform/initialize/auth/ecom"
	checkoutFormRetrievePath  = "/payment/iyzipos/checkoutform/auth/ecom/detail"
	gatewayStatusSuccess      = "success"
	gatewayPaymentStatusOK    = "SUCCESS"
	renewalBasketItemName     = "Yıllık Yenileme"
	renewalBasketItemCategory = "Servis"
)

// IyzicoGateway talks to the iyzico REST API. Checkout opens a monthly
// recurring plan behind a hosted payment page; renewal is a one-off
// charge through the checkout form.
type IyzicoGateway struct {
	cfg    config.PaymentConfig
	client *http.Client
	logger logger.Interface
}

func NewIyzicoGateway(cfg config.PaymentConfig, logger logger.Interface) *IyzicoGateway {
	timeout := time.Duration(cfg.RequestTimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &IyzicoGateway{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

var _ paymentgateway.PaymentGateway = (*IyzicoGateway)(nil)

type planResponse struct {
	Status        string `json:"status"`
	ErrorMessage  string `json:"errorMessage"`
	ReferenceCode string `json:"referenceCode"`
}

type subscriptionResponse struct {
	Status                 string `json:"status"`
	ErrorMessage           string `json:"errorMessage"`
	ReferenceCode          string `json:"referenceCode"`
	Token                  string `json:"token"`
	CheckoutFormContentURL string `json:"checkoutFormContentUrl"`
	PaymentPageURL         string `json:"paymentPageUrl"`
}

type checkoutFormResponse struct {
	Status         string `json:"status"`
	ErrorMessage   string `json:"errorMessage"`
	Token          string `json:"token"`
	PaymentPageURL string `json:"paymentPageUrl"`
	PaymentStatus  string `json:"paymentStatus"`
}

// CreateCheckoutSession creates a monthly recurring plan priced at the
// subscription's current amount and opens a hosted checkout for it.
func (g *IyzicoGateway) CreateCheckoutSession(ctx context.Context, req paymentgateway.CreateCheckoutRequest) (*paymentgateway.CheckoutSession, error) {
	planReq := map[string]any{
		"locale":               g.cfg.Locale,
		"conversationId":       uuid.NewString(),
		"name":                 fmt.Sprintf("Aylık Abonelik - %d", req.Customer.UserID),
		"price":                formatAmount(req.Amount),
		"currencyCode":         g.cfg.Currency,
		"paymentInterval":      "MONTHLY",
		"paymentIntervalCount": 1,
		"trialPeriodDays":      0,
		"planReferenceCode":    fmt.Sprintf("PLAN_%d_%d", req.Customer.UserID, time.Now().UnixMilli()),
	}

	var plan planResponse
	if err := g.post(ctx, subscriptionPlanPath, planReq, &plan); err != nil {
		return nil, err
	}
	if plan.Status != gatewayStatusSuccess {
		return nil, errors.NewGatewayError("failed to create pricing plan", plan.ErrorMessage)
	}

	subReq := map[string]any{
		"locale":                    g.cfg.Locale,
		"conversationId":            uuid.NewString(),
		"pricingPlanReferenceCode":  plan.ReferenceCode,
		"subscriptionInitialStatus": "ACTIVE",
		"callbackUrl":               g.cfg.CheckoutCallback,
		"customer": map[string]any{
			"name":      req.Customer.Name,
			"surname":   req.Customer.Name,
			"email":     req.Customer.Email,
			"gsmNumber": req.Customer.Phone,
		},
	}

	var sub subscriptionResponse
	if err := g.post(ctx, subscriptionCreatePath, subReq, &sub); err != nil {
		return nil, err
	}
	if sub.Status != gatewayStatusSuccess {
		return nil, errors.NewGatewayError("failed to create subscription", sub.ErrorMessage)
	}

	pageURL := sub.CheckoutFormContentURL
	if pageURL == "" {
		pageURL = sub.PaymentPageURL
	}

	g.logger.Infow("checkout session created at gateway",
		"user_id", req.Customer.UserID,
		"gateway_ref", sub.ReferenceCode,
	)

	return &paymentgateway.CheckoutSession{
		PaymentPageURL: pageURL,
		SessionToken:   sub.Token,
		GatewayRef:     sub.ReferenceCode,
	}, nil
}

// RetrieveOutcome pulls the checkout form result for a session token.
func (g *IyzicoGateway) RetrieveOutcome(ctx context.Context, token string) (*paymentgateway.PaymentOutcome, error) {
	retrieveReq := map[string]any{
		"locale": g.cfg.Locale,
		"token":  token,
	}

	var result checkoutFormResponse
	if err := g.post(ctx, checkoutFormRetrievePath, retrieveReq, &result); err != nil {
		return nil, err
	}
	if result.Status != gatewayStatusSuccess {
		return nil, errors.NewGatewayError("failed to retrieve checkout result", result.ErrorMessage)
	}

	return &paymentgateway.PaymentOutcome{
		Succeeded: result.PaymentStatus == gatewayPaymentStatusOK,
		RawStatus: result.PaymentStatus,
	}, nil
}

// CreateRenewalCharge opens a one-off checkout form for the renewal
// amount. The period is only extended once the outcome is verified.
func (g *IyzicoGateway) CreateRenewalCharge(ctx context.Context, req paymentgateway.CreateRenewalRequest) (*paymentgateway.CheckoutSession, error) {
	price := formatAmount(req.Amount)
	chargeReq := map[string]any{
		"locale":         g.cfg.Locale,
		"conversationId": uuid.NewString(),
		"price":          price,
		"paidPrice":      price,
		"currency":       g.cfg.Currency,
		"installment":    "1",
		"basketId":       fmt.Sprintf("RENEW_%d_%d", req.Customer.UserID, time.Now().UnixMilli()),
		"paymentChannel": "WEB",
		"paymentGroup":   "SUBSCRIPTION",
		"callbackUrl":    g.cfg.RenewalCallback,
		"buyer": map[string]any{
			"id":                  strconv.FormatUint(uint64(req.Customer.UserID), 10),
			"name":                req.Customer.Name,
			"surname":             req.Customer.Name,
			"email":               req.Customer.Email,
			"gsmNumber":           req.Customer.Phone,
			"registrationAddress": req.Customer.Address,
			"city":                "İstanbul",
			"country":             "Turkey",
		},
		"basketItems": []map[string]any{{
			"id":        "RENEWAL-001",
			"name":      renewalBasketItemName,
			"category1": renewalBasketItemCategory,
			"itemType":  "VIRTUAL",
			"price":     price,
		}},
	}

	var result checkoutFormResponse
	if err := g.post(ctx, checkoutFormInitPath, chargeReq, &result); err != nil {
		return nil, err
	}
	if result.Status != gatewayStatusSuccess {
		return nil, errors.NewGatewayError("failed to initialize renewal charge", result.ErrorMessage)
	}

	g.logger.Infow("renewal charge created at gateway", "user_id", req.Customer.UserID)

	return &paymentgateway.CheckoutSession{
		PaymentPageURL: result.PaymentPageURL,
		SessionToken:   result.Token,
	}, nil
}

// CancelRecurring cancels the recurring subscription at the gateway so
// no further monthly charges land after local expiry.
func (g *IyzicoGateway) CancelRecurring(ctx context.Context, gatewayRef string) error {
	var result planResponse
	path := fmt.Sprintf(subscriptionCancelFmt, gatewayRef)
	if err := g.post(ctx, path, map[string]any{"locale": g.cfg.Locale}, &result); err != nil {
		return err
	}
	if result.Status != gatewayStatusSuccess {
		return errors.NewGatewayError("failed to cancel recurring subscription", result.ErrorMessage)
	}
	return nil
}

func (g *IyzicoGateway) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal gateway request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build gateway request: %w", err)
	}

	randomKey := strconv.FormatInt(time.Now().UnixNano(), 10)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", g.authHeader(randomKey, path, payload))
	httpReq.Header.Set("x-iyzi-rnd", randomKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return errors.NewGatewayError("payment provider unreachable", err.Error())
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read gateway response: %w", err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.NewGatewayError("unexpected payment provider response", err.Error())
	}

	return nil
}

// authHeader builds the IYZWSv2 signature: HMAC-SHA256 over the random
// key, the request path and the raw body, keyed with the secret.
func (g *IyzicoGateway) authHeader(randomKey, path string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(g.cfg.SecretKey))
	mac.Write([]byte(randomKey))
	mac.Write([]byte(path))
	mac.Write(payload)
	signature := hex.EncodeToString(mac.Sum(nil))

	auth := fmt.Sprintf("apiKey:%s&randomKey:%s&signature:%s", g.cfg.APIKey, randomKey, signature)
	return "IYZWSv2 " + base64.StdEncoding.EncodeToString([]byte(auth))
}

func formatAmount(amount int64) string {
	return strconv.FormatInt(amount, 10) + ".00"
}
