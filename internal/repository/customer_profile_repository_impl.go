package repository

import (
	"context"
	"errors"

	"styledecor/internal/domain/entity"
	domainRepo "styledecor/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type customerProfileRepository struct {
	db *gorm.DB
}

func NewCustomerProfileRepository(db *gorm.DB) domainRepo.CustomerProfileRepository {
	return &customerProfileRepository{db: db}
}

func (r *customerProfileRepository) Create(ctx context.Context, profile *entity.CustomerProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *customerProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.CustomerProfile, error) {
	var profile entity.CustomerProfile
	err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *customerProfileRepository) Update(ctx context.Context, profile *entity.CustomerProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
