package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/salonsuite/salon-scheduler/internal/domain/access"
	userdomain "github.com/salonsuite/salon-scheduler/internal/domain/user"
	"github.com/salonsuite/salon-scheduler/internal/httperr"
	"github.com/salonsuite/salon-scheduler/internal/token"
)

const ContextActor = "actor"

// AuthMiddleware resolves the Bearer token into an Actor once per
// request. The user row is re-read on every request, so deactivating a
// user or changing their role revokes access immediately instead of at
// token expiry.
func AuthMiddleware(tokens *token.Service, users userdomain.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "invalid or expired token")
			c.Abort()
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			httperr.Unauthorized(c, "account_not_found", "account no longer exists")
			c.Abort()
			return
		}

		if !user.IsActive {
			httperr.Unauthorized(c, "user_inactive", "user account is deactivated")
			c.Abort()
			return
		}

		role, ok := access.ParseRole(user.Role)
		if !ok {
			httperr.Unauthorized(c, "invalid_role", "user has no valid role")
			c.Abort()
			return
		}

		c.Set(ContextActor, access.Actor{
			ID:       user.ID,
			Email:    user.Email,
			Role:     role,
			SalonID:  user.SalonID,
			IsActive: user.IsActive,
		})

		c.Next()
	}
}

func CurrentActor(c *gin.Context) (access.Actor, bool) {
	v, exists := c.Get(ContextActor)
	if !exists {
		return access.Actor{}, false
	}
	actor, ok := v.(access.Actor)
	return actor, ok
}
