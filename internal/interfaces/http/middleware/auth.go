package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/digitalcoban/coban/internal/domain/user"
	"github.com/digitalcoban/coban/internal/infrastructure/auth"
	"github.com/digitalcoban/coban/internal/shared/constants"
	"github.com/digitalcoban/coban/internal/shared/logger"
	"github.com/digitalcoban/coban/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   user.Repository
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, userRepo user.Repository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// RequireAuth verifies the Bearer token, resolves the account behind it
// and stores the numeric user ID on the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		account, err := m.userRepo.GetByUUID(c.Request.Context(), claims.UserUUID)
		if err != nil || account == nil {
			m.logger.Warnw("token references unknown account", "user_uuid", claims.UserUUID)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, account.ID())

		c.Next()
	}
}

// CurrentUserID reads the authenticated user ID placed on the context by
// RequireAuth. The second return is false on unauthenticated requests.
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	userID, ok := value.(uint)
	return userID, ok
}
