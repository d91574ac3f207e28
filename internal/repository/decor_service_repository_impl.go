package repository

import (
	"context"
	"errors"

	"styledecor/internal/domain/entity"
	domainRepo "styledecor/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type decorServiceRepository struct {
	db *gorm.DB
}

func NewDecorServiceRepository(db *gorm.DB) domainRepo.DecorServiceRepository {
	return &decorServiceRepository{db: db}
}

func (r *decorServiceRepository) Create(ctx context.Context, service *entity.DecorService) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *decorServiceRepository) FindAll(ctx context.Context, filter domainRepo.ServiceFilter, limit, offset int) ([]entity.DecorService, int64, error) {
	var services []entity.DecorService
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.DecorService{})

	if filter.ActiveOnly {
		query = query.Where("active = ?", true)
	}
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.Sort {
	case domainRepo.ServiceSortPriceLow:
		query = query.Order("price ASC")
	case domainRepo.ServiceSortPriceHigh:
		query = query.Order("price DESC")
	default:
		query = query.Order("created_at DESC")
	}

	if err := query.Limit(limit).Offset(offset).Find(&services).Error; err != nil {
		return nil, 0, err
	}

	return services, total, nil
}

func (r *decorServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DecorService, error) {
	var service entity.DecorService
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *decorServiceRepository) Update(ctx context.Context, service *entity.DecorService) error {
	return r.db.WithContext(ctx).Save(service).Error
}

func (r *decorServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.DecorService{}).Error
}
