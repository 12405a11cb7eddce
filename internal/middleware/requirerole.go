package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/salonsuite/salon-scheduler/internal/domain/access"
	"github.com/salonsuite/salon-scheduler/internal/httperr"
)

// RequireRoles is the per-route role gate: the route table declares
// which roles may even reach a handler, and the use cases still apply
// the finer-grained scoping rules behind it.
func RequireRoles(roles ...access.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		if !ok {
			httperr.Unauthorized(c, "actor_not_in_context", "not authenticated")
			c.Abort()
			return
		}

		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}

		httperr.Forbidden(c, "insufficient_role", "your role cannot perform this operation")
		c.Abort()
	}
}
