package repository

import (
	"context"

	"styledecor/internal/domain/entity"

	"github.com/google/uuid"
)

type DecoratorProfileRepository interface {
	Create(ctx context.Context, profile *entity.DecoratorProfile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.DecoratorProfile, error)
	FindAll(ctx context.Context) ([]entity.DecoratorProfile, error)
	FindAllActive(ctx context.Context) ([]entity.DecoratorProfile, error)

	// FindActiveByUserID resolves an assignment target: nil when the user does
	// not exist, is not a decorator, or has been disabled.
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) (*entity.DecoratorProfile, error)

	Update(ctx context.Context, profile *entity.DecoratorProfile) error
}
