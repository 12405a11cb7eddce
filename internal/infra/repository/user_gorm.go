package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/salonsuite/salon-scheduler/internal/apperr"
	"github.com/salonsuite/salon-scheduler/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Create(ctx context.Context, u *models.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return apperr.Internal("user_create_failed", err)
	}
	return nil
}

func (r *UserGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("Salon").
		Preload("Creator").
		First(&user, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user_not_found", "user not found")
		}
		return nil, apperr.Internal("user_lookup_failed", err)
	}
	return &user, nil
}

func (r *UserGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("Salon").
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user_not_found", "user not found")
		}
		return nil, apperr.Internal("user_lookup_failed", err)
	}
	return &user, nil
}

func (r *UserGormRepository) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Preload("Salon").
		Preload("Creator").
		Find(&users).Error; err != nil {
		return nil, apperr.Internal("user_list_failed", err)
	}
	return users, nil
}

func (r *UserGormRepository) FindBySalon(
	ctx context.Context,
	salonID uint,
) ([]models.User, error) {

	var users []models.User
	if err := r.db.WithContext(ctx).
		Preload("Salon").
		Preload("Creator").
		Where("salon_id = ?", salonID).
		Find(&users).Error; err != nil {
		return nil, apperr.Internal("user_list_failed", err)
	}
	return users, nil
}

func (r *UserGormRepository) Update(ctx context.Context, u *models.User) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		return apperr.Internal("user_update_failed", err)
	}
	return nil
}

func (r *UserGormRepository) Delete(ctx context.Context, u *models.User) error {
	if err := r.db.WithContext(ctx).Delete(u).Error; err != nil {
		return apperr.Internal("user_delete_failed", err)
	}
	return nil
}
