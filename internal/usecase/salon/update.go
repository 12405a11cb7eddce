package salon

import (
	"context"

	"github.com/salonsuite/salon-scheduler/internal/apperr"
	"github.com/salonsuite/salon-scheduler/internal/audit"
	"github.com/salonsuite/salon-scheduler/internal/domain/access"
	salondomain "github.com/salonsuite/salon-scheduler/internal/domain/salon"
	"github.com/salonsuite/salon-scheduler/internal/models"
)

type UpdateSalonInput struct {
	Name    *string
	Address *string
	Mobile  *string
}

type UpdateSalon struct {
	salons salondomain.Repository
	audit  audit.Recorder
}

func NewUpdateSalon(salons salondomain.Repository, audit audit.Recorder) *UpdateSalon {
	return &UpdateSalon{salons: salons, audit: audit}
}

func (uc *UpdateSalon) Execute(
	ctx context.Context,
	id uint,
	in UpdateSalonInput,
	actor access.Actor,
) (*models.Salon, error) {

	salon, err := uc.salons.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !access.CanAccessSalon(actor, salon.ID) {
		return nil, apperr.Authorization("salon_access_forbidden", "you cannot view this salon")
	}

	if !access.CanModifySalon(actor, salon.ID) {
		return nil, apperr.Authorization("salon_modify_forbidden", "you cannot modify this salon")
	}

	if in.Name != nil && *in.Name != salon.Name {
		if _, err := uc.salons.FindByName(ctx, *in.Name); err == nil {
			return nil, apperr.Conflict("salon_name_taken", "a salon with that name already exists")
		} else if !apperr.IsKind(err, apperr.KindNotFound) {
			return nil, err
		}
		salon.Name = *in.Name
	}

	if in.Address != nil {
		salon.Address = *in.Address
	}
	if in.Mobile != nil {
		salon.Mobile = *in.Mobile
	}

	if err := uc.salons.Update(ctx, salon); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  &salon.ID,
		UserID:   &actor.ID,
		Action:   "salon_updated",
		Entity:   "salon",
		EntityID: &salon.ID,
	})

	return uc.salons.FindByID(ctx, salon.ID)
}
