package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"eventify/internal/logger"
	"eventify/internal/models"
	"eventify/internal/storage"
	"eventify/internal/token"
	"eventify/internal/utils"
)

const userContextKey = "currentUser"

// RequireAuth extracts the bearer token, verifies it, and loads the principal
// it names. Any failure along the way aborts with 401; downstream handlers
// can rely on CurrentUser succeeding.
func RequireAuth(tokens *token.Service, store storage.Store, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse("No authorization token provided", ""))
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		if raw == header || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse("Invalid authorization header", ""))
			return
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			if errors.Is(err, token.ErrExpiredToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse("Token expired", ""))
				return
			}
			log.LogSecurity("TOKEN_REJECTED", fmt.Sprintf("Invalid token from IP %s", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse("Could not validate credentials", ""))
			return
		}

		user, err := store.GetUserByID(claims.UserID)
		if err != nil {
			// Token was valid but the account is gone; same response as a
			// bad token.
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse("Could not validate credentials", ""))
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireActive gates accounts that have not been activated yet. Must run
// after RequireAuth.
func RequireActive() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse("Could not validate credentials", ""))
			return
		}
		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse("Account not activated. Please contact an administrator.", ""))
			return
		}
		c.Next()
	}
}

// RequireRole is the single role predicate shared by every admin-gated
// route. Must run after RequireAuth.
func RequireRole(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse("Could not validate credentials", ""))
			return
		}
		if !user.Role.OneOf(allowed...) {
			c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse("Not enough permissions", ""))
			return
		}
		c.Next()
	}
}

// CurrentUser returns the principal placed by RequireAuth, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
