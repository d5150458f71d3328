package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/digitalcoban/coban/internal/application/subscription/usecases"
	"github.com/digitalcoban/coban/internal/interfaces/http/middleware"
	"github.com/digitalcoban/coban/internal/shared/logger"
	"github.com/digitalcoban/coban/internal/shared/utils"
)

// SubscriptionHandler handles the subscription lifecycle endpoints:
// status, checkout, renewal and herd repricing.
type SubscriptionHandler struct {
	getStatusUC      *usecases.GetStatusUseCase
	beginCheckoutUC  *usecases.BeginCheckoutUseCase
	verifyCheckoutUC *usecases.VerifyCheckoutUseCase
	beginRenewalUC   *usecases.BeginRenewalUseCase
	verifyRenewalUC  *usecases.VerifyRenewalUseCase
	updateCountsUC   *usecases.UpdateAnimalCountsUseCase
	logger           logger.Interface
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(
	getStatusUC *usecases.GetStatusUseCase,
	beginCheckoutUC *usecases.BeginCheckoutUseCase,
	verifyCheckoutUC *usecases.VerifyCheckoutUseCase,
	beginRenewalUC *usecases.BeginRenewalUseCase,
	verifyRenewalUC *usecases.VerifyRenewalUseCase,
	updateCountsUC *usecases.UpdateAnimalCountsUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		getStatusUC:      getStatusUC,
		beginCheckoutUC:  beginCheckoutUC,
		verifyCheckoutUC: verifyCheckoutUC,
		beginRenewalUC:   beginRenewalUC,
		verifyRenewalUC:  verifyRenewalUC,
		updateCountsUC:   updateCountsUC,
		logger:           logger,
	}
}

// UpdateAnimalCountsRequest reprices the subscription for a new herd
// composition
type UpdateAnimalCountsRequest struct {
	AnimalCounts map[string]int `json:"animal_counts" binding:"required"`
}

// CheckoutSessionResponse carries the hosted payment page for the client
// to redirect to
type CheckoutSessionResponse struct {
	PaymentPageURL string `json:"payment_page_url"`
}

// VerifyResponse reports the verified outcome of a checkout or renewal
// session
type VerifyResponse struct {
	Succeeded         bool       `json:"succeeded"`
	SubscriptionStart *time.Time `json:"subscription_start,omitempty"`
	SubscriptionEnd   *time.Time `json:"subscription_end,omitempty"`
}

// GetStatus returns the subscription read model for the authenticated user
func (h *SubscriptionHandler) GetStatus(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	status, err := h.getStatusUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toStatusResponse(status))
}

// BeginCheckout opens a hosted checkout session for the first paid period
func (h *SubscriptionHandler) BeginCheckout(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	pageURL, err := h.beginCheckoutUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "checkout session created", CheckoutSessionResponse{
		PaymentPageURL: pageURL,
	})
}

// VerifyCheckout is the gateway callback target for checkout sessions.
// The token arrives as a form field on the provider's POST or as a query
// parameter; the outcome is always pulled from the gateway, never taken
// from the callback body.
func (h *SubscriptionHandler) VerifyCheckout(c *gin.Context) {
	token := sessionToken(c)

	result, err := h.verifyCheckoutUC.Execute(c.Request.Context(), token)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", VerifyResponse{
		Succeeded:         result.Succeeded,
		SubscriptionStart: result.SubscriptionStart,
		SubscriptionEnd:   result.SubscriptionEnd,
	})
}

// BeginRenewal opens a one-off renewal charge for the next period
func (h *SubscriptionHandler) BeginRenewal(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	pageURL, err := h.beginRenewalUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "renewal session created", CheckoutSessionResponse{
		PaymentPageURL: pageURL,
	})
}

// VerifyRenewal is the gateway callback target for renewal charges
func (h *SubscriptionHandler) VerifyRenewal(c *gin.Context) {
	token := sessionToken(c)

	result, err := h.verifyRenewalUC.Execute(c.Request.Context(), token)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", VerifyResponse{
		Succeeded:         result.Succeeded,
		SubscriptionStart: result.SubscriptionStart,
		SubscriptionEnd:   result.SubscriptionEnd,
	})
}

// UpdateAnimalCounts reprices the active subscription for a changed herd
func (h *SubscriptionHandler) UpdateAnimalCounts(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req UpdateAnimalCountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update animal counts", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	sub, err := h.updateCountsUC.Execute(c.Request.Context(), usecases.UpdateAnimalCountsCommand{
		UserID:       userID,
		AnimalCounts: toCounts(req.AnimalCounts),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "animal counts updated", toSubscriptionResponse(sub))
}

func sessionToken(c *gin.Context) string {
	if token := c.Query("token"); token != "" {
		return token
	}
	return c.PostForm("token")
}
