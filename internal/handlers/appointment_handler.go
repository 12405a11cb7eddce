package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salonsuite/salon-scheduler/internal/httperr"
	"github.com/salonsuite/salon-scheduler/internal/httpresp"
	"github.com/salonsuite/salon-scheduler/internal/middleware"
	ucAppointment "github.com/salonsuite/salon-scheduler/internal/usecase/appointment"
)

type AppointmentHandler struct {
	create         *ucAppointment.CreateAppointment
	listBySalon    *ucAppointment.ListBySalon
	listByEmployee *ucAppointment.ListByEmployee
	get            *ucAppointment.GetAppointment
	update         *ucAppointment.UpdateAppointment
	cancel         *ucAppointment.CancelAppointment
	remove         *ucAppointment.DeleteAppointment
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	listBySalon *ucAppointment.ListBySalon,
	listByEmployee *ucAppointment.ListByEmployee,
	get *ucAppointment.GetAppointment,
	update *ucAppointment.UpdateAppointment,
	cancel *ucAppointment.CancelAppointment,
	remove *ucAppointment.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:         create,
		listBySalon:    listBySalon,
		listByEmployee: listByEmployee,
		get:            get,
		update:         update,
		cancel:         cancel,
		remove:         remove,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	StartTime   time.Time `json:"start_time" binding:"required"`
	DurationMin int       `json:"duration_min"`

	ClientID   uint  `json:"client_id" binding:"required"`
	EmployeeID *uint `json:"employee_id"`
	ServiceID  uint  `json:"service_id" binding:"required"`

	Notes string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	StartTime   *time.Time `json:"start_time"`
	DurationMin *int       `json:"duration_min"`

	ClientID   *uint `json:"client_id"`
	EmployeeID *uint `json:"employee_id"`
	ServiceID  *uint `json:"service_id"`

	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) Create(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		httperr.Unauthorized(c, "actor_not_in_context", "not authenticated")
		return
	}

	salonID, ok := resolveSalonID(c, actor)
	if !ok {
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		SalonID:     salonID,
		StartTime:   req.StartTime,
		DurationMin: req.DurationMin,
		ClientID:    req.ClientID,
		EmployeeID:  req.EmployeeID,
		ServiceID:   req.ServiceID,
		Notes:       req.Notes,
	}, actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) ListBySalon(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		httperr.Unauthorized(c, "actor_not_in_context", "not authenticated")
		return
	}

	salonID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	appointments, err := h.listBySalon.Execute(c.Request.Context(), salonID, actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, appointments)
}

func (h *AppointmentHandler) ListByEmployee(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		httperr.Unauthorized(c, "actor_not_in_context", "not authenticated")
		return
	}

	employeeID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return
	}

	appointments, err := h.listByEmployee.Execute(c.Request.Context(), employeeID, actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, appointments)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
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

	ap, err := h.get.Execute(c.Request.Context(), id, actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
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

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), id, ucAppointment.UpdateAppointmentInput{
		StartTime:   req.StartTime,
		DurationMin: req.DurationMin,
		ClientID:    req.ClientID,
		EmployeeID:  req.EmployeeID,
		ServiceID:   req.ServiceID,
		Status:      req.Status,
		Notes:       req.Notes,
	}, actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
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

	ap, err := h.cancel.Execute(c.Request.Context(), id, actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
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

	httpresp.OK(c, gin.H{"message": "appointment deleted"})
}
