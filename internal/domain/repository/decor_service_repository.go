package repository

import (
	"context"

	"styledecor/internal/domain/entity"

	"github.com/google/uuid"
)

// ServiceFilter narrows the public catalog listing
type ServiceFilter struct {
	Query      string
	Category   string
	Type       string
	Sort       string
	ActiveOnly bool
}

// Catalog sort keys
const (
	ServiceSortNewest    = "newest"
	ServiceSortPriceLow  = "price_low"
	ServiceSortPriceHigh = "price_high"
)

type DecorServiceRepository interface {
	Create(ctx context.Context, service *entity.DecorService) error
	FindAll(ctx context.Context, filter ServiceFilter, limit, offset int) ([]entity.DecorService, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DecorService, error)
	Update(ctx context.Context, service *entity.DecorService) error
	Delete(ctx context.Context, id uuid.UUID) error
}
