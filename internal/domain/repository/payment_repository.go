package repository

import (
	"context"

	"styledecor/internal/domain/entity"

	"github.com/google/uuid"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]entity.Payment, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error)
}
