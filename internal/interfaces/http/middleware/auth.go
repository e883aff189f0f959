package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yogeshwar16/realestatehousing/internal/domain/entities"
	domainerrors "github.com/yogeshwar16/realestatehousing/internal/domain/errors"
	"github.com/yogeshwar16/realestatehousing/internal/interfaces/http/response"
	"github.com/yogeshwar16/realestatehousing/internal/usecases"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// CurrentUserKey is the context key for the authenticated user
	CurrentUserKey = "currentUser"
)

// AuthMiddleware resolves the bearer token to a user account. The token is
// the caller's registered mobile number.
func AuthMiddleware(authUsecase *usecases.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			response.Error(c, domainerrors.Unauthorized("Authorization header is required"))
			c.Abort()
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			response.Error(c, domainerrors.Unauthorized("Invalid authorization format. Use: Bearer <token>"))
			c.Abort()
			return
		}

		mobile := strings.TrimPrefix(authHeader, BearerPrefix)
		user, err := authUsecase.GetUserByMobileNumber(c.Request.Context(), mobile)
		if err != nil {
			response.Error(c, domainerrors.Unauthorized("Invalid or unknown token"))
			c.Abort()
			return
		}
		if user.IsActive.Valid && !user.IsActive.Bool {
			response.Error(c, domainerrors.Forbidden("User account is deactivated"))
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// CurrentUser pulls the authenticated user set by AuthMiddleware
func CurrentUser(c *gin.Context) (*entities.User, bool) {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entities.User)
	return user, ok
}
