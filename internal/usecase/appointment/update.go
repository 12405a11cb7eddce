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

// UpdateAppointmentInput carries optional field changes; nil means
// "leave unchanged". A set EmployeeID reassigns the appointment to
// another employee; clearing it back to unassigned is not supported.
type UpdateAppointmentInput struct {
	StartTime   *time.Time
	DurationMin *int

	ClientID   *uint
	EmployeeID *uint
	ServiceID  *uint

	Status *string
	Notes  *string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit audit.Recorder,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute merges the provided fields into the appointment. Reference
// changes stay within the appointment's salon and status changes go
// through the transition table.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uint,
	in UpdateAppointmentInput,
	actor access.Actor,
) (*models.Appointment, error) {

	ap, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !access.CanAccessSalon(actor, ap.SalonID) {
		return nil, apperr.Authorization("appointment_access_forbidden", "you cannot modify this appointment")
	}

	if in.ClientID != nil && *in.ClientID != ap.ClientID {
		if _, err := uc.repo.GetClient(ctx, ap.SalonID, *in.ClientID); err != nil {
			return nil, referenceError(err, "client_not_in_salon", "client does not belong to this salon")
		}
		ap.ClientID = *in.ClientID
	}

	if in.ServiceID != nil && *in.ServiceID != ap.ServiceID {
		if _, err := uc.repo.GetService(ctx, ap.SalonID, *in.ServiceID); err != nil {
			return nil, referenceError(err, "service_not_in_salon", "service does not belong to this salon")
		}
		ap.ServiceID = *in.ServiceID
	}

	if in.EmployeeID != nil {
		if _, err := uc.repo.GetEmployee(ctx, ap.SalonID, *in.EmployeeID); err != nil {
			return nil, referenceError(err, "employee_not_in_salon", "employee does not belong to this salon")
		}
		ap.EmployeeID = in.EmployeeID
	}

	if in.Status != nil {
		if err := domain.ChangeStatus(ap, domain.Status(*in.Status)); err != nil {
			return nil, err
		}
	}

	if in.StartTime != nil {
		ap.StartTime = *in.StartTime
	}
	if in.DurationMin != nil {
		if *in.DurationMin <= 0 {
			return nil, apperr.Validation("invalid_duration", "duration must be positive")
		}
		ap.DurationMin = *in.DurationMin
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	ap.UpdatedBy = &actor.ID

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  &ap.SalonID,
		UserID:   &actor.ID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
