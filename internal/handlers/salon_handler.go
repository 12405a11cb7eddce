package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/salonsuite/salon-scheduler/internal/httperr"
	"github.com/salonsuite/salon-scheduler/internal/httpresp"
	"github.com/salonsuite/salon-scheduler/internal/middleware"
	ucSalon "github.com/salonsuite/salon-scheduler/internal/usecase/salon"
	"github.com/salonsuite/salon-scheduler/internal/validators"
)

type SalonHandler struct {
	create *ucSalon.CreateSalon
	list   *ucSalon.ListSalons
	get    *ucSalon.GetSalon
	update *ucSalon.UpdateSalon
	remove *ucSalon.DeleteSalon
}

func NewSalonHandler(
	create *ucSalon.CreateSalon,
	list *ucSalon.ListSalons,
	get *ucSalon.GetSalon,
	update *ucSalon.UpdateSalon,
	remove *ucSalon.DeleteSalon,
) *SalonHandler {
	return &SalonHandler{
		create: create,
		list:   list,
		get:    get,
		update: update,
		remove: remove,
	}
}

// --------- Requests ---------

type CreateSalonRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Mobile  string `json:"mobile"`

	Admin struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Mobile   string `json:"mobile"`
		Password string `json:"password" binding:"required,min=6"`
	} `json:"admin" binding:"required"`
}

type UpdateSalonRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Mobile  *string `json:"mobile"`
}

// --------- Handlers ---------

func (h *SalonHandler) Create(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		httperr.Unauthorized(c, "actor_not_in_context", "not authenticated")
		return
	}

	var req CreateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := validators.Normalize(req.Admin.Email)
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "the administrator email domain does not resolve")
		return
	}

	salon, err := h.create.Execute(c.Request.Context(), ucSalon.CreateSalonInput{
		Name:    strings.TrimSpace(req.Name),
		Address: req.Address,
		Mobile:  req.Mobile,
		Admin: ucSalon.AdminInput{
			Name:     req.Admin.Name,
			Email:    email,
			Mobile:   req.Admin.Mobile,
			Password: req.Admin.Password,
		},
	}, actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, salon)
}

func (h *SalonHandler) List(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		httperr.Unauthorized(c, "actor_not_in_context", "not authenticated")
		return
	}

	salons, err := h.list.Execute(c.Request.Context(), actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, salons)
}

func (h *SalonHandler) Get(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		httperr.Unauthorized(c, "actor_not_in_context", "not authenticated")
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	salon, err := h.get.Execute(c.Request.Context(), id, actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, salon)
}

func (h *SalonHandler) Update(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		httperr.Unauthorized(c, "actor_not_in_context", "not authenticated")
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	salon, err := h.update.Execute(c.Request.Context(), id, ucSalon.UpdateSalonInput{
		Name:    req.Name,
		Address: req.Address,
		Mobile:  req.Mobile,
	}, actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, salon)
}

func (h *SalonHandler) Delete(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		httperr.Unauthorized(c, "actor_not_in_context", "not authenticated")
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id, actor); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "salon deleted"})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, strconv.ErrRange
	}
	return uint(id), nil
}
