package appointment

import (
	"context"
	"time"

	"github.com/salonsuite/salon-scheduler/internal/apperr"
	"github.com/salonsuite/salon-scheduler/internal/audit"
	"github.com/salonsuite/salon-scheduler/internal/domain/access"
	domain "github.com/salonsuite/salon-scheduler/internal/domain/appointment"
	"github.com/salonsuite/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	SalonID uint

	StartTime   time.Time
	DurationMin int

	ClientID   uint
	EmployeeID *uint
	ServiceID  uint

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCreateAppointment(
	repo domain.Repository,
	audit audit.Recorder,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute persists a new pending appointment. Client, employee and
// service must all belong to the appointment's salon; lookups are
// salon-scoped so a cross-salon reference reads as missing.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
	actor access.Actor,
) (*models.Appointment, error) {

	if !access.CanAccessSalon(actor, in.SalonID) {
		return nil, apperr.Authorization("salon_access_forbidden", "you cannot book in this salon")
	}

	if in.StartTime.IsZero() {
		return nil, apperr.Validation("start_time_required", "start time is required")
	}

	if _, err := uc.repo.GetClient(ctx, in.SalonID, in.ClientID); err != nil {
		return nil, referenceError(err, "client_not_in_salon", "client does not belong to this salon")
	}

	svc, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, referenceError(err, "service_not_in_salon", "service does not belong to this salon")
	}

	if in.EmployeeID != nil {
		if _, err := uc.repo.GetEmployee(ctx, in.SalonID, *in.EmployeeID); err != nil {
			return nil, referenceError(err, "employee_not_in_salon", "employee does not belong to this salon")
		}
	}

	duration := in.DurationMin
	if duration <= 0 {
		duration = svc.DurationMin
	}
	if duration <= 0 {
		return nil, apperr.Validation("invalid_duration", "duration must be positive")
	}

	ap := &models.Appointment{
		SalonID:     in.SalonID,
		ClientID:    in.ClientID,
		EmployeeID:  in.EmployeeID,
		ServiceID:   in.ServiceID,
		StartTime:   in.StartTime,
		DurationMin: duration,
		Status:      string(domain.InitialStatus()),
		Notes:       in.Notes,
		CreatedBy:   actor.ID,
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  &ap.SalonID,
		UserID:   &actor.ID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// referenceError keeps repository internals internal but turns a
// missing scoped reference into a validation failure on the input.
func referenceError(err error, code, message string) error {
	if apperr.IsKind(err, apperr.KindNotFound) {
		return apperr.Validation(code, message)
	}
	return err
}
