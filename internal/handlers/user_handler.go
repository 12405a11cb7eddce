package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/salonsuite/salon-scheduler/internal/domain/access"
	"github.com/salonsuite/salon-scheduler/internal/httperr"
	"github.com/salonsuite/salon-scheduler/internal/httpresp"
	"github.com/salonsuite/salon-scheduler/internal/middleware"
	ucUser "github.com/salonsuite/salon-scheduler/internal/usecase/user"
	"github.com/salonsuite/salon-scheduler/internal/validators"
)

type UserHandler struct {
	create *ucUser.CreateUser
	list   *ucUser.ListUsers
	get    *ucUser.GetUser
	update *ucUser.UpdateUser
	remove *ucUser.DeleteUser
}

func NewUserHandler(
	create *ucUser.CreateUser,
	list *ucUser.ListUsers,
	get *ucUser.GetUser,
	update *ucUser.UpdateUser,
	remove *ucUser.DeleteUser,
) *UserHandler {
	return &UserHandler{
		create: create,
		list:   list,
		get:    get,
		update: update,
		remove: remove,
	}
}

// --------- Requests ---------

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Mobile   *string `json:"mobile"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

// --------- Handlers ---------

func (h *UserHandler) Create(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		httperr.Unauthorized(c, "actor_not_in_context", "not authenticated")
		return
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	role, ok := access.ParseRole(req.Role)
	if !ok {
		httperr.BadRequest(c, "invalid_role", "unknown role "+req.Role)
		return
	}

	email := validators.Normalize(req.Email)
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "the email domain does not resolve")
		return
	}

	user, err := h.create.Execute(c.Request.Context(), ucUser.CreateUserInput{
		Name:     req.Name,
		Email:    email,
		Mobile:   req.Mobile,
		Password: req.Password,
		Role:     role,
	}, actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, user)
}

func (h *UserHandler) List(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		httperr.Unauthorized(c, "actor_not_in_context", "not authenticated")
		return
	}

	users, err := h.list.Execute(c.Request.Context(), actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, users)
}

func (h *UserHandler) Get(c *gin.Context) {
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

	user, err := h.get.Execute(c.Request.Context(), id, actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
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

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	in := ucUser.UpdateUserInput{
		Name:     req.Name,
		Mobile:   req.Mobile,
		Password: req.Password,
		IsActive: req.IsActive,
	}

	if req.Role != nil {
		role, ok := access.ParseRole(*req.Role)
		if !ok {
			httperr.BadRequest(c, "invalid_role", "unknown role "+*req.Role)
			return
		}
		in.Role = &role
	}

	if req.Email != nil {
		email := validators.Normalize(*req.Email)
		in.Email = &email
	}

	user, err := h.update.Execute(c.Request.Context(), id, in, actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
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

	httpresp.OK(c, gin.H{"message": "user deleted"})
}
