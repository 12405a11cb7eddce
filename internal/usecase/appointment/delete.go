package appointment

import (
	"context"

	"github.com/salonsuite/salon-scheduler/internal/apperr"
	"github.com/salonsuite/salon-scheduler/internal/audit"
	"github.com/salonsuite/salon-scheduler/internal/domain/access"
	domain "github.com/salonsuite/salon-scheduler/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit audit.Recorder,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(ctx context.Context, id uint, actor access.Actor) error {
	ap, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !access.CanAccessSalon(actor, ap.SalonID) {
		return apperr.Authorization("appointment_access_forbidden", "you cannot delete this appointment")
	}

	if err := uc.repo.Delete(ctx, ap); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  &ap.SalonID,
		UserID:   &actor.ID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
