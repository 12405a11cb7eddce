package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/salonsuite/salon-scheduler/internal/apperr"
	"github.com/salonsuite/salon-scheduler/internal/audit"
	"github.com/salonsuite/salon-scheduler/internal/domain/access"
	userdomain "github.com/salonsuite/salon-scheduler/internal/domain/user"
	"github.com/salonsuite/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateUserInput struct {
	Name     string
	Email    string
	Mobile   string
	Password string
	Role     access.Role
}

// ======================================================
// USE CASE
// ======================================================

type CreateUser struct {
	users userdomain.Repository
	audit audit.Recorder
}

func NewCreateUser(users userdomain.Repository, audit audit.Recorder) *CreateUser {
	return &CreateUser{users: users, audit: audit}
}

func (uc *CreateUser) Execute(
	ctx context.Context,
	in CreateUserInput,
	actor access.Actor,
) (*models.User, error) {

	if !access.CanCreateRole(actor.Role, in.Role) {
		return nil, apperr.Authorization("role_create_forbidden", "you cannot create a user with role "+string(in.Role))
	}

	// The hierarchy already implies this, but keep the explicit guard:
	// only a super admin may ever mint another super admin.
	if in.Role == access.RoleSuperAdmin && actor.Role != access.RoleSuperAdmin {
		return nil, apperr.Authorization("role_create_forbidden", "only a super admin can create another super admin")
	}

	if _, err := uc.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, apperr.Conflict("email_taken", "a user with that email already exists")
	} else if !apperr.IsKind(err, apperr.KindNotFound) {
		return nil, err
	}

	// Tenant inheritance: super-admin-created users start unassigned,
	// everyone else joins the creator's salon.
	var salonID *uint
	if actor.Role != access.RoleSuperAdmin {
		salonID = actor.SalonID
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("password_hash_failed", err)
	}

	newUser := &models.User{
		SalonID:      salonID,
		Name:         in.Name,
		Email:        in.Email,
		Mobile:       in.Mobile,
		PasswordHash: string(hashed),
		Role:         string(in.Role),
		IsActive:     true,
		CreatedBy:    &actor.ID,
	}

	if err := uc.users.Create(ctx, newUser); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &actor.ID,
		Action:   "user_created",
		Entity:   "user",
		EntityID: &newUser.ID,
	})

	return newUser, nil
}
