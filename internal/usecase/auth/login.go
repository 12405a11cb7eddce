package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/salonsuite/salon-scheduler/internal/apperr"
	userdomain "github.com/salonsuite/salon-scheduler/internal/domain/user"
	"github.com/salonsuite/salon-scheduler/internal/models"
	"github.com/salonsuite/salon-scheduler/internal/token"
)

type LoginResult struct {
	Token string
	User  *models.User
}

type Login struct {
	users  userdomain.Repository
	tokens *token.Service
}

func NewLogin(users userdomain.Repository, tokens *token.Service) *Login {
	return &Login{users: users, tokens: tokens}
}

// Execute validates credentials and issues a session token. Unknown
// email and wrong password are indistinguishable to the caller.
func (uc *Login) Execute(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, apperr.Authentication("invalid_credentials", "invalid email or password")
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, apperr.Authentication("user_inactive", "user account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.Authentication("invalid_credentials", "invalid email or password")
	}

	signed, err := uc.tokens.Sign(user.ID, user.Email, user.Role, user.SalonID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: signed,
		User:  user,
	}, nil
}
