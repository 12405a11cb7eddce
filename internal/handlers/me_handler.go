package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userdomain "github.com/salonsuite/salon-scheduler/internal/domain/user"
	"github.com/salonsuite/salon-scheduler/internal/httperr"
	"github.com/salonsuite/salon-scheduler/internal/httpresp"
	"github.com/salonsuite/salon-scheduler/internal/middleware"
	ucSalon "github.com/salonsuite/salon-scheduler/internal/usecase/salon"
)

type MeHandler struct {
	users   userdomain.Repository
	mySalon *ucSalon.GetMySalon
}

func NewMeHandler(users userdomain.Repository, mySalon *ucSalon.GetMySalon) *MeHandler {
	return &MeHandler{users: users, mySalon: mySalon}
}

func (h *MeHandler) GetProfile(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		httperr.Unauthorized(c, "actor_not_in_context", "not authenticated")
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	resp := gin.H{
		"user": gin.H{
			"id":        user.ID,
			"name":      user.Name,
			"email":     user.Email,
			"role":      user.Role,
			"salon_id":  user.SalonID,
			"is_active": user.IsActive,
		},
	}

	if user.Salon != nil {
		resp["user"].(gin.H)["salon"] = gin.H{
			"id":   user.Salon.ID,
			"name": user.Salon.Name,
		}
	}

	c.JSON(http.StatusOK, resp)
}

// GetMySalon returns the actor's salon; super admins have none.
func (h *MeHandler) GetMySalon(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		httperr.Unauthorized(c, "actor_not_in_context", "not authenticated")
		return
	}

	salon, err := h.mySalon.Execute(c.Request.Context(), actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if salon == nil {
		c.JSON(http.StatusOK, gin.H{"salon": nil})
		return
	}

	httpresp.OK(c, salon)
}
