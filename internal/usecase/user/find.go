package user

import (
	"context"

	"github.com/salonsuite/salon-scheduler/internal/apperr"
	"github.com/salonsuite/salon-scheduler/internal/domain/access"
	userdomain "github.com/salonsuite/salon-scheduler/internal/domain/user"
	"github.com/salonsuite/salon-scheduler/internal/models"
)

func subjectOf(u *models.User) access.Subject {
	return access.Subject{
		ID:      u.ID,
		Role:    access.Role(u.Role),
		SalonID: u.SalonID,
	}
}

type ListUsers struct {
	users userdomain.Repository
}

func NewListUsers(users userdomain.Repository) *ListUsers {
	return &ListUsers{users: users}
}

// Execute: a super admin sees everyone, everyone else only their own
// salon's staff.
func (uc *ListUsers) Execute(ctx context.Context, actor access.Actor) ([]models.User, error) {
	if actor.Role == access.RoleSuperAdmin {
		return uc.users.FindAll(ctx)
	}

	if actor.SalonID == nil {
		return nil, apperr.Authorization("user_list_forbidden", "you are not assigned to a salon")
	}
	return uc.users.FindBySalon(ctx, *actor.SalonID)
}

type GetUser struct {
	users userdomain.Repository
}

func NewGetUser(users userdomain.Repository) *GetUser {
	return &GetUser{users: users}
}

func (uc *GetUser) Execute(ctx context.Context, id uint, actor access.Actor) (*models.User, error) {
	user, err := uc.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !access.CanAccessUser(actor, subjectOf(user)) {
		return nil, apperr.Authorization("user_access_forbidden", "you cannot view this user")
	}

	return user, nil
}
