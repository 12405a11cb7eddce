package appointment

import (
	"context"

	"github.com/salonsuite/salon-scheduler/internal/apperr"
	"github.com/salonsuite/salon-scheduler/internal/domain/access"
	domain "github.com/salonsuite/salon-scheduler/internal/domain/appointment"
	userdomain "github.com/salonsuite/salon-scheduler/internal/domain/user"
	"github.com/salonsuite/salon-scheduler/internal/models"
)

type ListBySalon struct {
	repo domain.Repository
}

func NewListBySalon(repo domain.Repository) *ListBySalon {
	return &ListBySalon{repo: repo}
}

func (uc *ListBySalon) Execute(
	ctx context.Context,
	salonID uint,
	actor access.Actor,
) ([]models.Appointment, error) {

	if !access.CanAccessSalon(actor, salonID) {
		return nil, apperr.Authorization("salon_access_forbidden", "you cannot view this salon's appointments")
	}
	return uc.repo.FindBySalon(ctx, salonID)
}

type ListByEmployee struct {
	repo  domain.Repository
	users userdomain.Repository
}

func NewListByEmployee(
	repo domain.Repository,
	users userdomain.Repository,
) *ListByEmployee {
	return &ListByEmployee{
		repo:  repo,
		users: users,
	}
}

// Execute lists an employee's appointments, start time ascending.
// Employees may always read their own agenda; anyone else needs
// access to the employee's salon.
func (uc *ListByEmployee) Execute(
	ctx context.Context,
	employeeID uint,
	actor access.Actor,
) ([]models.Appointment, error) {

	if actor.ID != employeeID && actor.Role != access.RoleSuperAdmin {
		employee, err := uc.users.FindByID(ctx, employeeID)
		if err != nil {
			return nil, err
		}
		if employee.SalonID == nil || !actor.InSalon(*employee.SalonID) {
			return nil, apperr.Authorization("employee_access_forbidden", "you cannot view this employee's appointments")
		}
	}

	return uc.repo.FindByEmployee(ctx, employeeID)
}

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	id uint,
	actor access.Actor,
) (*models.Appointment, error) {

	ap, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !access.CanAccessSalon(actor, ap.SalonID) {
		return nil, apperr.Authorization("appointment_access_forbidden", "you cannot view this appointment")
	}

	return ap, nil
}
