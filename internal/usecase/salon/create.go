package salon

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/salonsuite/salon-scheduler/internal/apperr"
	"github.com/salonsuite/salon-scheduler/internal/audit"
	"github.com/salonsuite/salon-scheduler/internal/domain/access"
	salondomain "github.com/salonsuite/salon-scheduler/internal/domain/salon"
	userdomain "github.com/salonsuite/salon-scheduler/internal/domain/user"
	"github.com/salonsuite/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type AdminInput struct {
	Name     string
	Email    string
	Mobile   string
	Password string
}

type CreateSalonInput struct {
	Name    string
	Address string
	Mobile  string

	Admin AdminInput
}

// ======================================================
// USE CASE
// ======================================================

type CreateSalon struct {
	salons salondomain.Repository
	users  userdomain.Repository
	audit  audit.Recorder
}

func NewCreateSalon(
	salons salondomain.Repository,
	users userdomain.Repository,
	audit audit.Recorder,
) *CreateSalon {
	return &CreateSalon{
		salons: salons,
		users:  users,
		audit:  audit,
	}
}

// Execute creates a salon and its first administrator in one unit of
// work: either both rows exist afterwards or neither does.
func (uc *CreateSalon) Execute(
	ctx context.Context,
	in CreateSalonInput,
	actor access.Actor,
) (*models.Salon, error) {

	if actor.Role != access.RoleSuperAdmin {
		return nil, apperr.Authorization("salon_create_forbidden", "only the super admin can create salons")
	}

	// Best-effort uniqueness pre-checks; the database unique indexes
	// close the race window.
	if _, err := uc.salons.FindByName(ctx, in.Name); err == nil {
		return nil, apperr.Conflict("salon_name_taken", "a salon with that name already exists")
	} else if !apperr.IsKind(err, apperr.KindNotFound) {
		return nil, err
	}

	if _, err := uc.users.FindByEmail(ctx, in.Admin.Email); err == nil {
		return nil, apperr.Conflict("email_taken", "a user with that email already exists")
	} else if !apperr.IsKind(err, apperr.KindNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("password_hash_failed", err)
	}

	salon := &models.Salon{
		Name:    in.Name,
		Address: in.Address,
		Mobile:  in.Mobile,
	}

	admin := &models.User{
		Name:         in.Admin.Name,
		Email:        in.Admin.Email,
		Mobile:       in.Admin.Mobile,
		PasswordHash: string(hashed),
		Role:         string(access.RoleAdmin),
		IsActive:     true,
		CreatedBy:    &actor.ID,
	}

	if err := uc.salons.CreateWithAdmin(ctx, salon, admin); err != nil {
		return nil, err
	}

	created, err := uc.salons.FindByID(ctx, salon.ID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  &salon.ID,
		UserID:   &actor.ID,
		Action:   "salon_created",
		Entity:   "salon",
		EntityID: &salon.ID,
	})

	return created, nil
}
