package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/salonsuite/salon-scheduler/internal/apperr"
	"github.com/salonsuite/salon-scheduler/internal/models"
)

type SalonGormRepository struct {
	db *gorm.DB
}

func NewSalonGormRepository(db *gorm.DB) *SalonGormRepository {
	return &SalonGormRepository{db: db}
}

func (r *SalonGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).
		Preload("Users").
		First(&salon, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("salon_not_found", "salon not found")
		}
		return nil, apperr.Internal("salon_lookup_failed", err)
	}
	return &salon, nil
}

func (r *SalonGormRepository) FindByName(
	ctx context.Context,
	name string,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&salon).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("salon_not_found", "salon not found")
		}
		return nil, apperr.Internal("salon_lookup_failed", err)
	}
	return &salon, nil
}

func (r *SalonGormRepository) FindAll(ctx context.Context) ([]models.Salon, error) {
	var salons []models.Salon
	if err := r.db.WithContext(ctx).
		Preload("Users").
		Order("created_at DESC").
		Find(&salons).Error; err != nil {
		return nil, apperr.Internal("salon_list_failed", err)
	}
	return salons, nil
}

func (r *SalonGormRepository) Update(ctx context.Context, s *models.Salon) error {
	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		return apperr.Internal("salon_update_failed", err)
	}
	return nil
}

// Delete cascades to the salon's clients, services and appointments in
// one transaction. Users are handled by the SET NULL constraint; the
// active-user guard runs in the use case before we ever get here.
func (r *SalonGormRepository) Delete(ctx context.Context, s *models.Salon) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("salon_id = ?", s.ID).Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("salon_id = ?", s.ID).Delete(&models.Service{}).Error; err != nil {
			return err
		}
		if err := tx.Where("salon_id = ?", s.ID).Delete(&models.Client{}).Error; err != nil {
			return err
		}
		return tx.Delete(s).Error
	})
	if err != nil {
		return apperr.Internal("salon_delete_failed", err)
	}
	return nil
}

func (r *SalonGormRepository) CountActiveUsers(
	ctx context.Context,
	salonID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("salon_id = ? AND is_active = ?", salonID, true).
		Count(&count).Error; err != nil {
		return 0, apperr.Internal("salon_user_count_failed", err)
	}
	return count, nil
}

// CreateWithAdmin inserts the salon and its first administrator in a
// single transaction so no salon is ever visible without its admin.
func (r *SalonGormRepository) CreateWithAdmin(
	ctx context.Context,
	s *models.Salon,
	admin *models.User,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(s).Error; err != nil {
			return err
		}

		admin.SalonID = &s.ID
		return tx.Create(admin).Error
	})
	if err != nil {
		return apperr.Internal("salon_create_failed", err)
	}
	return nil
}
