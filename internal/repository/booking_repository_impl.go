package repository

import (
	"context"
	"errors"

	"styledecor/internal/domain/entity"
	domainRepo "styledecor/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) domainRepo.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.db.WithContext(ctx).
		Preload("AssignedDecorator").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.db.WithContext(ctx).
		Preload("AssignedDecorator").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByDecoratorID(ctx context.Context, decoratorID uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.db.WithContext(ctx).
		Where("assigned_decorator_id = ?", decoratorID).
		Order("event_date ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.db.WithContext(ctx).
		Preload("AssignedDecorator").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatusIfActive refuses terminal rows in the WHERE clause so the
// terminality check and the write are a single atomic statement.
func (r *bookingRepository) UpdateStatusIfActive(ctx context.Context, id uuid.UUID, status entity.BookingStatus) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Booking{}).
		Where("id = ? AND status NOT IN ?", id, []entity.BookingStatus{entity.BookingStatusComplete, entity.BookingStatusCancelled}).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) UpdateAssignmentIfEligible(ctx context.Context, id uuid.UUID, decoratorID *uuid.UUID, team string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Booking{}).
		Where("id = ? AND payment_status = ? AND status != ?", id, entity.PaymentStatusPaid, entity.BookingStatusCancelled).
		Updates(map[string]interface{}{
			"assigned_decorator_id": decoratorID,
			"assigned_team":         team,
		})
	return result.RowsAffected, result.Error
}

// MarkPaidIfUnpaid is deliberately not gated on status: payment completion is
// recorded even for cancelled bookings.
func (r *bookingRepository) MarkPaidIfUnpaid(ctx context.Context, id uuid.UUID, transactionID string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Booking{}).
		Where("id = ? AND payment_status = ?", id, entity.PaymentStatusUnpaid).
		Updates(map[string]interface{}{
			"payment_status": entity.PaymentStatusPaid,
			"transaction_id": transactionID,
		})
	return result.RowsAffected, result.Error
}
