package repository

import (
	"context"
	"errors"

	"styledecor/internal/domain/entity"
	domainRepo "styledecor/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type decoratorProfileRepository struct {
	db *gorm.DB
}

func NewDecoratorProfileRepository(db *gorm.DB) domainRepo.DecoratorProfileRepository {
	return &decoratorProfileRepository{db: db}
}

func (r *decoratorProfileRepository) Create(ctx context.Context, profile *entity.DecoratorProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *decoratorProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.DecoratorProfile, error) {
	var profile entity.DecoratorProfile
	err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *decoratorProfileRepository) FindAll(ctx context.Context) ([]entity.DecoratorProfile, error) {
	var profiles []entity.DecoratorProfile
	err := r.db.WithContext(ctx).Preload("User").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *decoratorProfileRepository) FindAllActive(ctx context.Context) ([]entity.DecoratorProfile, error) {
	var profiles []entity.DecoratorProfile
	err := r.db.WithContext(ctx).Preload("User").
		Joins("JOIN users ON users.id = decorator_profiles.user_id").
		Where("users.is_active = ?", true).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// FindActiveByUserID joins through users so a disabled or non-decorator
// account resolves to nil, never to a stale profile.
func (r *decoratorProfileRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) (*entity.DecoratorProfile, error) {
	var profile entity.DecoratorProfile
	err := r.db.WithContext(ctx).Preload("User").
		Joins("JOIN users ON users.id = decorator_profiles.user_id").
		Where("decorator_profiles.user_id = ? AND users.is_active = ? AND users.role_id = ?", userID, true, entity.RoleIDDecorator).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *decoratorProfileRepository) Update(ctx context.Context, profile *entity.DecoratorProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
