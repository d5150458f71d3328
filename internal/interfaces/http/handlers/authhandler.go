package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	subusecases "github.com/digitalcoban/coban/internal/application/subscription/usecases"
	"github.com/digitalcoban/coban/internal/application/user/usecases"
	"github.com/digitalcoban/coban/internal/domain/billing"
	"github.com/digitalcoban/coban/internal/domain/user"
	"github.com/digitalcoban/coban/internal/interfaces/http/middleware"
	"github.com/digitalcoban/coban/internal/shared/logger"
	"github.com/digitalcoban/coban/internal/shared/utils"
)

// AuthHandler handles account registration and login
type AuthHandler struct {
	registerUseCase *usecases.RegisterUseCase
	loginUseCase    *usecases.LoginUseCase
	getStatusUC     *subusecases.GetStatusUseCase
	userRepo        user.Repository
	logger          logger.Interface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	registerUC *usecases.RegisterUseCase,
	loginUC *usecases.LoginUseCase,
	getStatusUC *subusecases.GetStatusUseCase,
	userRepo user.Repository,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase: registerUC,
		loginUseCase:    loginUC,
		getStatusUC:     getStatusUC,
		userRepo:        userRepo,
		logger:          logger,
	}
}

// RegisterRequest represents the request to create an account
type RegisterRequest struct {
	Username     string         `json:"username" binding:"required,min=2,max=100"`
	Email        string         `json:"email" binding:"required,email"`
	Phone        string         `json:"phone" binding:"max=30"`
	Address      string         `json:"address" binding:"max=500"`
	Password     string         `json:"password" binding:"required,min=8"`
	AnimalCounts map[string]int `json:"animal_counts" binding:"required"`
}

// LoginRequest represents the login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse represents the response for a new registration
type RegisterResponse struct {
	User         *UserResponse         `json:"user"`
	Subscription *SubscriptionResponse `json:"subscription"`
}

// LoginResponse represents the response for a successful login
type LoginResponse struct {
	User         *UserResponse         `json:"user"`
	AccessToken  string                `json:"access_token"`
	ExpiresIn    int64                 `json:"expires_in"`
	Subscription *SubscriptionResponse `json:"subscription,omitempty"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), usecases.RegisterCommand{
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Password:     req.Password,
		AnimalCounts: toCounts(req.AnimalCounts),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, RegisterResponse{
		User:         toUserResponse(result.User),
		Subscription: toSubscriptionResponse(result.Subscription),
	}, "account created")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := LoginResponse{
		User:        toUserResponse(result.User),
		AccessToken: result.AccessToken,
		ExpiresIn:   result.ExpiresIn,
	}
	if result.Subscription != nil {
		resp.Subscription = toStatusResponse(result.Subscription)
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", resp)
}

// GetCurrentUser returns the authenticated account together with its
// subscription read model.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	account, err := h.userRepo.GetByID(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if account == nil {
		utils.ErrorResponse(c, http.StatusNotFound, "user not found")
		return
	}

	resp := gin.H{"user": toUserResponse(account)}
	if status, err := h.getStatusUC.Execute(c.Request.Context(), userID); err == nil {
		resp["subscription"] = toStatusResponse(status)
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func toCounts(raw map[string]int) billing.Counts {
	counts := make(billing.Counts, len(raw))
	for animalType, count := range raw {
		counts[billing.AnimalType(animalType)] = count
	}
	return counts
}
