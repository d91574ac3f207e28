package usecase

import (
	"context"
	"errors"
	"time"

	"styledecor/internal/converter"
	"styledecor/internal/delivery/dto"
	"styledecor/internal/domain/entity"
	"styledecor/internal/domain/repository"
	"styledecor/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrForbidden          = errors.New("you do not have access to this booking")
	ErrInvalidTransition  = errors.New("booking accepts no further status changes")
	ErrPaymentRequired    = errors.New("booking must be paid before assignment")
	ErrBookingCancelled   = errors.New("booking is cancelled")
	ErrUnknownDecorator   = errors.New("decorator not found or inactive")
	ErrServiceNotFound    = errors.New("service not found")
	ErrServiceUnavailable = errors.New("service is not available for booking")
)

type BookingUsecase interface {
	Create(ctx context.Context, actor entity.Actor, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetByID(ctx context.Context, actor entity.Actor, bookingID uuid.UUID) (*dto.BookingResponse, error)
	ListMine(ctx context.Context, actor entity.Actor) (*dto.BookingListResponse, error)
	ListAssigned(ctx context.Context, actor entity.Actor) (*dto.BookingListResponse, error)
	ListAll(ctx context.Context, actor entity.Actor) (*dto.BookingListResponse, error)
	Assign(ctx context.Context, actor entity.Actor, bookingID uuid.UUID, req *dto.AssignBookingRequest) (*dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, actor entity.Actor, bookingID uuid.UUID, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error)
	Cancel(ctx context.Context, actor entity.Actor, bookingID uuid.UUID) error
	MarkPaid(ctx context.Context, actor entity.Actor, bookingID uuid.UUID, req *dto.MarkPaidRequest) (*dto.BookingResponse, error)
}

type bookingUsecase struct {
	log           *logrus.Logger
	bookingRepo   repository.BookingRepository
	serviceRepo   repository.DecorServiceRepository
	decoratorRepo repository.DecoratorProfileRepository
	paymentRepo   repository.PaymentRepository
	auditService  service.AuditService
}

func NewBookingUsecase(
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	serviceRepo repository.DecorServiceRepository,
	decoratorRepo repository.DecoratorProfileRepository,
	paymentRepo repository.PaymentRepository,
	auditService service.AuditService,
) BookingUsecase {
	return &bookingUsecase{
		log:           log,
		bookingRepo:   bookingRepo,
		serviceRepo:   serviceRepo,
		decoratorRepo: decoratorRepo,
		paymentRepo:   paymentRepo,
		auditService:  auditService,
	}
}

// Create books a decoration service for the acting customer. Service title and
// price are snapshotted so later catalog edits never touch existing bookings.
func (u *bookingUsecase) Create(ctx context.Context, actor entity.Actor, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return nil, ErrServiceNotFound
	}

	decorService, err := u.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", req.ServiceID, err)
		return nil, err
	}
	if decorService == nil {
		return nil, ErrServiceNotFound
	}
	if !decorService.Active {
		return nil, ErrServiceUnavailable
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return nil, errors.New("event_date must be in YYYY-MM-DD format")
	}

	booking := &entity.Booking{
		CustomerID:    actor.UserID,
		CustomerEmail: actor.Email,
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		ServiceID:     decorService.ID,
		ServiceTitle:  decorService.Title,
		Price:         decorService.Price,
		EventDate:     eventDate,
		Slot:          req.Slot,
		Venue:         req.Venue,
		Address:       req.Address,
		Notes:         req.Notes,
		Status:        entity.BookingStatusAssigned,
		PaymentStatus: entity.PaymentStatusUnpaid,
	}

	if err := u.bookingRepo.Create(ctx, booking); err != nil {
		u.log.Errorf("Failed to insert booking: %+v", err)
		return nil, err
	}

	u.auditService.LogAction(ctx, &actor.UserID, entity.AuditActionBookingCreate, "booking", booking.ID.String(), nil, booking)

	u.log.Infof("Booking created: id=%s, service=%s, customer=%s", booking.ID, booking.ServiceTitle, actor.Email)
	return converter.BookingToResponse(booking), nil
}

// GetByID returns a single booking. Admins see everything, customers only
// their own bookings, decorators only bookings assigned to them.
func (u *bookingUsecase) GetByID(ctx context.Context, actor entity.Actor, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := u.findVisibleBooking(ctx, actor, bookingID)
	if err != nil {
		return nil, err
	}
	return converter.BookingToResponse(booking), nil
}

// ListMine returns all bookings created by the acting customer
func (u *bookingUsecase) ListMine(ctx context.Context, actor entity.Actor) (*dto.BookingListResponse, error) {
	bookings, err := u.bookingRepo.FindByCustomerID(ctx, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find bookings for customer %s: %+v", actor.UserID, err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

// ListAssigned returns all bookings assigned to the acting decorator
func (u *bookingUsecase) ListAssigned(ctx context.Context, actor entity.Actor) (*dto.BookingListResponse, error) {
	bookings, err := u.bookingRepo.FindByDecoratorID(ctx, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find bookings for decorator %s: %+v", actor.UserID, err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

// ListAll returns every booking in the system, admin only
func (u *bookingUsecase) ListAll(ctx context.Context, actor entity.Actor) (*dto.BookingListResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	bookings, err := u.bookingRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list bookings: %+v", err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

// Assign sets or clears the decorator on a booking, admin only. The booking
// must be paid and not cancelled; the target must be an active decorator
// account. The eligibility check rides in the UPDATE's WHERE clause, so a
// concurrent cancel can never race past it.
func (u *bookingUsecase) Assign(ctx context.Context, actor entity.Actor, bookingID uuid.UUID, req *dto.AssignBookingRequest) (*dto.BookingResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	booking, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	var decoratorID *uuid.UUID
	if req.DecoratorID != nil {
		id, err := uuid.Parse(*req.DecoratorID)
		if err != nil {
			return nil, ErrUnknownDecorator
		}

		profile, err := u.decoratorRepo.FindActiveByUserID(ctx, id)
		if err != nil {
			u.log.Warnf("Failed to resolve decorator %s: %+v", id, err)
			return nil, err
		}
		if profile == nil {
			return nil, ErrUnknownDecorator
		}
		decoratorID = &id
	}

	affected, err := u.bookingRepo.UpdateAssignmentIfEligible(ctx, bookingID, decoratorID, req.Team)
	if err != nil {
		u.log.Warnf("Failed to assign booking %s: %+v", bookingID, err)
		return nil, err
	}
	if affected == 0 {
		return nil, u.classifyAssignmentFailure(ctx, bookingID)
	}

	u.auditService.LogAction(ctx, &actor.UserID, entity.AuditActionBookingAssign, "booking", bookingID.String(), booking.AssignedDecoratorID, decoratorID)

	updated, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil || updated == nil {
		u.log.Warnf("Failed to reload booking %s: %+v", bookingID, err)
		return converter.BookingToResponse(booking), nil
	}

	u.log.Infof("Booking assigned: id=%s, decorator=%v, team=%s", bookingID, decoratorID, req.Team)
	return converter.BookingToResponse(updated), nil
}

// UpdateStatus moves a booking to any work step. Only the assigned decorator
// may do this, and steps need not advance in order: a decorator can jump back
// to planning after setup. Complete and cancelled bookings reject every
// change.
func (u *bookingUsecase) UpdateStatus(ctx context.Context, actor entity.Actor, bookingID uuid.UUID, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error) {
	if !actor.IsDecorator() {
		return nil, ErrForbidden
	}

	status, err := entity.ParseBookingStatus(req.Status)
	if err != nil || !status.IsWorkStep() {
		return nil, ErrInvalidTransition
	}

	booking, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if !booking.IsAssignedTo(actor.UserID) {
		return nil, ErrForbidden
	}

	affected, err := u.bookingRepo.UpdateStatusIfActive(ctx, bookingID, status)
	if err != nil {
		u.log.Warnf("Failed to update booking %s status: %+v", bookingID, err)
		return nil, err
	}
	if affected == 0 {
		// The booking reached a terminal state between read and write.
		return nil, ErrInvalidTransition
	}

	u.auditService.LogAction(ctx, &actor.UserID, entity.AuditActionBookingStatus, "booking", bookingID.String(), booking.Status, status)

	booking.Status = status
	u.log.Infof("Booking status updated: id=%s, status=%s, decorator=%s", bookingID, status, actor.UserID)
	return converter.BookingToResponse(booking), nil
}

// Cancel marks a booking cancelled. The owning customer or an admin may
// cancel; complete and already-cancelled bookings reject it. Cancellation
// never touches payment state.
func (u *bookingUsecase) Cancel(ctx context.Context, actor entity.Actor, bookingID uuid.UUID) error {
	booking, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}
	if !actor.IsAdmin() && !booking.IsOwnedBy(actor.UserID) {
		return ErrForbidden
	}

	affected, err := u.bookingRepo.UpdateStatusIfActive(ctx, bookingID, entity.BookingStatusCancelled)
	if err != nil {
		u.log.Warnf("Failed to cancel booking %s: %+v", bookingID, err)
		return err
	}
	if affected == 0 {
		return ErrInvalidTransition
	}

	u.auditService.LogAction(ctx, &actor.UserID, entity.AuditActionBookingCancel, "booking", bookingID.String(), booking.Status, entity.BookingStatusCancelled)

	u.log.Infof("Booking cancelled: id=%s, by=%s", bookingID, actor.Email)
	return nil
}

// MarkPaid records a confirmed payment exactly once. The first call wins and
// stores the transaction id; every repeat is a silent success that leaves the
// original transaction untouched. A cancelled booking can still be marked
// paid, payment settles independently of the work lifecycle.
func (u *bookingUsecase) MarkPaid(ctx context.Context, actor entity.Actor, bookingID uuid.UUID, req *dto.MarkPaidRequest) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if !actor.IsAdmin() && !booking.IsOwnedBy(actor.UserID) {
		return nil, ErrForbidden
	}

	affected, err := u.bookingRepo.MarkPaidIfUnpaid(ctx, bookingID, req.TransactionID)
	if err != nil {
		u.log.Warnf("Failed to mark booking %s paid: %+v", bookingID, err)
		return nil, err
	}

	if affected == 0 {
		// Already paid: idempotent no-op, return current state unchanged.
		if booking.IsPaid() {
			return converter.BookingToResponse(booking), nil
		}
		current, err := u.bookingRepo.FindByID(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, ErrBookingNotFound
		}
		return converter.BookingToResponse(current), nil
	}

	// First completion: write the payment ledger row. A ledger miss is logged
	// but never unwinds the paid flag.
	payment := &entity.Payment{
		BookingID:     booking.ID,
		CustomerID:    booking.CustomerID,
		ServiceTitle:  booking.ServiceTitle,
		Amount:        booking.Price,
		TransactionID: req.TransactionID,
		Status:        entity.PaymentRecordSucceeded,
	}
	if err := u.paymentRepo.Create(ctx, payment); err != nil {
		u.log.Warnf("Failed to record payment for booking %s (non-fatal): %+v", bookingID, err)
	}

	u.auditService.LogAction(ctx, &actor.UserID, entity.AuditActionBookingPay, "booking", bookingID.String(), booking.PaymentStatus, entity.PaymentStatusPaid)

	booking.PaymentStatus = entity.PaymentStatusPaid
	booking.TransactionID = &req.TransactionID
	u.log.Infof("Booking paid: id=%s, transaction=%s", bookingID, req.TransactionID)
	return converter.BookingToResponse(booking), nil
}

// findVisibleBooking loads a booking and enforces per-role visibility
func (u *bookingUsecase) findVisibleBooking(ctx context.Context, actor entity.Actor, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	switch {
	case actor.IsAdmin():
		return booking, nil
	case actor.IsCustomer() && booking.IsOwnedBy(actor.UserID):
		return booking, nil
	case actor.IsDecorator() && booking.IsAssignedTo(actor.UserID):
		return booking, nil
	default:
		return nil, ErrForbidden
	}
}

// classifyAssignmentFailure re-reads a booking after a zero-row conditional
// assignment to report which precondition failed
func (u *bookingUsecase) classifyAssignmentFailure(ctx context.Context, bookingID uuid.UUID) error {
	booking, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}
	if booking.IsCancelled() {
		return ErrBookingCancelled
	}
	if !booking.IsPaid() {
		return ErrPaymentRequired
	}
	return ErrBookingNotFound
}
