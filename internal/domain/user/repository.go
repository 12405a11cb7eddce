package user

import (
	"context"

	"github.com/salonsuite/salon-scheduler/internal/models"
)

type Repository interface {
	Create(ctx context.Context, u *models.User) error

	// FindByID loads the user with salon and creator.
	FindByID(ctx context.Context, id uint) (*models.User, error)

	// FindByEmail is unscoped: the login flow runs before any tenant
	// is known.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	FindAll(ctx context.Context) ([]models.User, error)

	FindBySalon(ctx context.Context, salonID uint) ([]models.User, error)

	Update(ctx context.Context, u *models.User) error

	Delete(ctx context.Context, u *models.User) error
}
