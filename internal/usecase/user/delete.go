package user

import (
	"context"

	"github.com/salonsuite/salon-scheduler/internal/apperr"
	"github.com/salonsuite/salon-scheduler/internal/audit"
	"github.com/salonsuite/salon-scheduler/internal/domain/access"
	userdomain "github.com/salonsuite/salon-scheduler/internal/domain/user"
)

type DeleteUser struct {
	users userdomain.Repository
	audit audit.Recorder
}

func NewDeleteUser(users userdomain.Repository, audit audit.Recorder) *DeleteUser {
	return &DeleteUser{users: users, audit: audit}
}

func (uc *DeleteUser) Execute(ctx context.Context, id uint, actor access.Actor) error {
	if id == actor.ID {
		return apperr.Validation("self_delete_forbidden", "you cannot delete your own user")
	}

	user, err := uc.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !access.CanAccessUser(actor, subjectOf(user)) {
		return apperr.Authorization("user_access_forbidden", "you cannot view this user")
	}

	if !access.CanModifyUser(actor, subjectOf(user)) {
		return apperr.Authorization("user_modify_forbidden", "you cannot delete this user")
	}

	// Super admins are never hard-deleted, only deactivated.
	if user.Role == string(access.RoleSuperAdmin) {
		return apperr.Validation("super_admin_delete_forbidden", "a super admin can only be deactivated, not deleted")
	}

	if err := uc.users.Delete(ctx, user); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  user.SalonID,
		UserID:   &actor.ID,
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return nil
}
