package salon

import (
	"context"
	"fmt"

	"github.com/salonsuite/salon-scheduler/internal/apperr"
	"github.com/salonsuite/salon-scheduler/internal/audit"
	"github.com/salonsuite/salon-scheduler/internal/domain/access"
	salondomain "github.com/salonsuite/salon-scheduler/internal/domain/salon"
)

type DeleteSalon struct {
	salons salondomain.Repository
	audit  audit.Recorder
}

func NewDeleteSalon(salons salondomain.Repository, audit audit.Recorder) *DeleteSalon {
	return &DeleteSalon{salons: salons, audit: audit}
}

// Execute deletes a salon and cascades to its clients, services and
// appointments. Blocked while the salon still owns active users.
func (uc *DeleteSalon) Execute(ctx context.Context, id uint, actor access.Actor) error {
	if actor.Role != access.RoleSuperAdmin {
		return apperr.Authorization("salon_delete_forbidden", "only the super admin can delete salons")
	}

	salon, err := uc.salons.FindByID(ctx, id)
	if err != nil {
		return err
	}

	activeUsers, err := uc.salons.CountActiveUsers(ctx, salon.ID)
	if err != nil {
		return err
	}

	if activeUsers > 0 {
		return apperr.Conflict(
			"salon_has_active_users",
			fmt.Sprintf("salon has %d active user(s); deactivate them first", activeUsers),
		)
	}

	if err := uc.salons.Delete(ctx, salon); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  &salon.ID,
		UserID:   &actor.ID,
		Action:   "salon_deleted",
		Entity:   "salon",
		EntityID: &salon.ID,
	})

	return nil
}
