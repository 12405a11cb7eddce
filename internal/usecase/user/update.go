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

type UpdateUserInput struct {
	Name     *string
	Email    *string
	Mobile   *string
	Password *string
	Role     *access.Role
	IsActive *bool
}

type UpdateUser struct {
	users userdomain.Repository
	audit audit.Recorder
}

func NewUpdateUser(users userdomain.Repository, audit audit.Recorder) *UpdateUser {
	return &UpdateUser{users: users, audit: audit}
}

func (uc *UpdateUser) Execute(
	ctx context.Context,
	id uint,
	in UpdateUserInput,
	actor access.Actor,
) (*models.User, error) {

	user, err := uc.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !access.CanAccessUser(actor, subjectOf(user)) {
		return nil, apperr.Authorization("user_access_forbidden", "you cannot view this user")
	}

	if !access.CanModifyUser(actor, subjectOf(user)) {
		return nil, apperr.Authorization("user_modify_forbidden", "you cannot modify this user")
	}

	if in.Role != nil && string(*in.Role) != user.Role {
		if !access.CanCreateRole(actor.Role, *in.Role) {
			return nil, apperr.Authorization("role_assign_forbidden", "you cannot assign role "+string(*in.Role))
		}
		user.Role = string(*in.Role)
	}

	if in.Email != nil && *in.Email != user.Email {
		if _, err := uc.users.FindByEmail(ctx, *in.Email); err == nil {
			return nil, apperr.Conflict("email_taken", "a user with that email already exists")
		} else if !apperr.IsKind(err, apperr.KindNotFound) {
			return nil, err
		}
		user.Email = *in.Email
	}

	if in.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Internal("password_hash_failed", err)
		}
		user.PasswordHash = string(hashed)
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Mobile != nil {
		user.Mobile = *in.Mobile
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}

	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  user.SalonID,
		UserID:   &actor.ID,
		Action:   "user_updated",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return uc.users.FindByID(ctx, user.ID)
}
