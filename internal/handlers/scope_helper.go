package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/salonsuite/salon-scheduler/internal/domain/access"
	"github.com/salonsuite/salon-scheduler/internal/httperr"
)

// resolveSalonID picks the salon a request operates on. Regular actors
// are pinned to their own salon; super admins must name one through the
// salon_id query parameter. Writes the error response itself and
// returns false when no salon can be resolved.
func resolveSalonID(c *gin.Context, actor access.Actor) (uint, bool) {
	if actor.Role == access.RoleSuperAdmin {
		raw := c.Query("salon_id")
		if raw == "" {
			httperr.BadRequest(c, "salon_id_required", "super admins must pass salon_id")
			return 0, false
		}
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			httperr.BadRequest(c, "invalid_salon_id", "salon_id must be a positive integer")
			return 0, false
		}
		return uint(id), true
	}

	if actor.SalonID == nil {
		httperr.Forbidden(c, "no_salon", "the authenticated user has no salon")
		return 0, false
	}

	return *actor.SalonID, true
}
