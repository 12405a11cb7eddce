package salon

import (
	"context"

	"github.com/salonsuite/salon-scheduler/internal/apperr"
	"github.com/salonsuite/salon-scheduler/internal/domain/access"
	salondomain "github.com/salonsuite/salon-scheduler/internal/domain/salon"
	"github.com/salonsuite/salon-scheduler/internal/models"
)

type ListSalons struct {
	salons salondomain.Repository
}

func NewListSalons(salons salondomain.Repository) *ListSalons {
	return &ListSalons{salons: salons}
}

func (uc *ListSalons) Execute(ctx context.Context, actor access.Actor) ([]models.Salon, error) {
	if actor.Role != access.RoleSuperAdmin {
		return nil, apperr.Authorization("salon_list_forbidden", "only the super admin can list all salons")
	}
	return uc.salons.FindAll(ctx)
}

type GetSalon struct {
	salons salondomain.Repository
}

func NewGetSalon(salons salondomain.Repository) *GetSalon {
	return &GetSalon{salons: salons}
}

// Execute distinguishes a salon that does not exist (not found) from
// one the actor may not see (authorization).
func (uc *GetSalon) Execute(ctx context.Context, id uint, actor access.Actor) (*models.Salon, error) {
	salon, err := uc.salons.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !access.CanAccessSalon(actor, salon.ID) {
		return nil, apperr.Authorization("salon_access_forbidden", "you cannot view this salon")
	}

	return salon, nil
}

type GetMySalon struct {
	salons salondomain.Repository
}

func NewGetMySalon(salons salondomain.Repository) *GetMySalon {
	return &GetMySalon{salons: salons}
}

// Execute returns the actor's own salon, or nil for actors without one
// (super admins).
func (uc *GetMySalon) Execute(ctx context.Context, actor access.Actor) (*models.Salon, error) {
	if actor.SalonID == nil {
		return nil, nil
	}
	return uc.salons.FindByID(ctx, *actor.SalonID)
}
