package appointment

import (
	"context"

	"github.com/salonsuite/salon-scheduler/internal/apperr"
	"github.com/salonsuite/salon-scheduler/internal/audit"
	"github.com/salonsuite/salon-scheduler/internal/domain/access"
	domain "github.com/salonsuite/salon-scheduler/internal/domain/appointment"
	"github.com/salonsuite/salon-scheduler/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCancelAppointment(
	repo domain.Repository,
	audit audit.Recorder,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	id uint,
	actor access.Actor,
) (*models.Appointment, error) {

	ap, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !access.CanAccessSalon(actor, ap.SalonID) {
		return nil, apperr.Authorization("appointment_access_forbidden", "you cannot cancel this appointment")
	}

	if err := domain.Cancel(ap); err != nil {
		return nil, err
	}

	ap.UpdatedBy = &actor.ID

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  &ap.SalonID,
		UserID:   &actor.ID,
		Action:   "appointment_canceled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
