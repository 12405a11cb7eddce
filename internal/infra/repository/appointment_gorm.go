package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/salonsuite/salon-scheduler/internal/apperr"
	"github.com/salonsuite/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		return apperr.Internal("appointment_create_failed", err)
	}
	return nil
}

func (r *AppointmentGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Employee").
		Preload("Service").
		Preload("Salon").
		First(&ap, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("appointment_not_found", "appointment not found")
		}
		return nil, apperr.Internal("appointment_lookup_failed", err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) FindByEmployee(
	ctx context.Context,
	employeeID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("Salon").
		Where("employee_id = ?", employeeID).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, apperr.Internal("appointment_list_failed", err)
	}
	return aps, nil
}

func (r *AppointmentGormRepository) FindBySalon(
	ctx context.Context,
	salonID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("Salon").
		Where("salon_id = ?", salonID).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, apperr.Internal("appointment_list_failed", err)
	}
	return aps, nil
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Save(ap).Error; err != nil {
		return apperr.Internal("appointment_update_failed", err)
	}
	return nil
}

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Delete(ap).Error; err != nil {
		return apperr.Internal("appointment_delete_failed", err)
	}
	return nil
}

// --------------------------------------------------
// Salon-scoped references
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	salonID uint,
	clientID uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", clientID, salonID).
		First(&client).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("client_not_found", "client not found in this salon")
		}
		return nil, apperr.Internal("client_lookup_failed", err)
	}
	return &client, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	salonID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", serviceID, salonID).
		First(&svc).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("service_not_found", "service not found in this salon")
		}
		return nil, apperr.Internal("service_lookup_failed", err)
	}
	return &svc, nil
}

func (r *AppointmentGormRepository) GetEmployee(
	ctx context.Context,
	salonID uint,
	userID uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", userID, salonID).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("employee_not_found", "employee not found in this salon")
		}
		return nil, apperr.Internal("employee_lookup_failed", err)
	}
	return &user, nil
}
