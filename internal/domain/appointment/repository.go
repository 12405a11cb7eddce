package appointment

import (
	"context"

	"github.com/salonsuite/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Appointment --------
	Create(ctx context.Context, ap *models.Appointment) error

	FindByID(ctx context.Context, id uint) (*models.Appointment, error)

	FindByEmployee(ctx context.Context, employeeID uint) ([]models.Appointment, error)

	FindBySalon(ctx context.Context, salonID uint) ([]models.Appointment, error)

	Update(ctx context.Context, ap *models.Appointment) error

	Delete(ctx context.Context, ap *models.Appointment) error

	// -------- Salon-scoped references --------
	// Lookups are scoped to the salon so a reference belonging to a
	// different salon is indistinguishable from a missing one.

	GetClient(ctx context.Context, salonID uint, clientID uint) (*models.Client, error)

	GetService(ctx context.Context, salonID uint, serviceID uint) (*models.Service, error)

	GetEmployee(ctx context.Context, salonID uint, userID uint) (*models.User, error)
}
