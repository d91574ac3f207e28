package repository

import (
	"context"

	"styledecor/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingRepository persists bookings. The three conditional updates embed
// their precondition in the WHERE clause so check and write happen as one
// atomic statement; callers inspect the affected-row count to tell success
// from a failed precondition.
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]entity.Booking, error)
	FindByDecoratorID(ctx context.Context, decoratorID uuid.UUID) ([]entity.Booking, error)
	FindAll(ctx context.Context) ([]entity.Booking, error)

	// UpdateStatusIfActive sets status only when the current status is not
	// terminal. Returns affected rows: 0 means the booking was missing or
	// already complete/cancelled.
	UpdateStatusIfActive(ctx context.Context, id uuid.UUID, status entity.BookingStatus) (int64, error)

	// UpdateAssignmentIfEligible sets decorator/team only when the booking is
	// paid and not cancelled. A nil decoratorID clears the assignment.
	UpdateAssignmentIfEligible(ctx context.Context, id uuid.UUID, decoratorID *uuid.UUID, team string) (int64, error)

	// MarkPaidIfUnpaid records payment_status=paid and the transaction id only
	// when the booking is still unpaid. Returns affected rows: 0 means the
	// booking was missing or already paid (first completion wins).
	MarkPaidIfUnpaid(ctx context.Context, id uuid.UUID, transactionID string) (int64, error)
}
