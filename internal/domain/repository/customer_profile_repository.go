package repository

import (
	"context"

	"styledecor/internal/domain/entity"

	"github.com/google/uuid"
)

type CustomerProfileRepository interface {
	Create(ctx context.Context, profile *entity.CustomerProfile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.CustomerProfile, error)
	Update(ctx context.Context, profile *entity.CustomerProfile) error
}
