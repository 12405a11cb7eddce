package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salonsuite/salon-scheduler/internal/httperr"
	"github.com/salonsuite/salon-scheduler/internal/usecase/auth"
	"github.com/salonsuite/salon-scheduler/internal/validators"
)

type AuthHandler struct {
	login *auth.Login
}

func NewAuthHandler(login *auth.Login) *AuthHandler {
	return &AuthHandler{login: login}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := validators.Normalize(req.Email)

	result, err := h.login.Execute(c.Request.Context(), email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	user := result.User

	resp := gin.H{
		"access_token": result.Token,
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

// Logout is symbolic: sessions are stateless JWTs, the client drops
// the token.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
