package salon

import (
	"context"

	"github.com/salonsuite/salon-scheduler/internal/models"
)

type Repository interface {
	// FindByID loads the salon with its user collection.
	FindByID(ctx context.Context, id uint) (*models.Salon, error)

	FindByName(ctx context.Context, name string) (*models.Salon, error)

	// FindAll returns every salon with users, newest first.
	FindAll(ctx context.Context) ([]models.Salon, error)

	Update(ctx context.Context, s *models.Salon) error

	// Delete removes the salon and its owned clients, services and
	// appointments in one transaction.
	Delete(ctx context.Context, s *models.Salon) error

	CountActiveUsers(ctx context.Context, salonID uint) (int64, error)

	// CreateWithAdmin persists the salon and its first administrator
	// atomically: if either insert fails, neither is committed.
	CreateWithAdmin(ctx context.Context, s *models.Salon, admin *models.User) error
}
