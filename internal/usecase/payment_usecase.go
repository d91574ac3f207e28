package usecase

import (
	"context"

	"styledecor/internal/converter"
	"styledecor/internal/delivery/dto"
	"styledecor/internal/domain/entity"
	"styledecor/internal/domain/repository"
	"styledecor/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type PaymentUsecase interface {
	CreateIntent(ctx context.Context, actor entity.Actor, req *dto.CreatePaymentIntentRequest) (*dto.PaymentIntentResponse, error)
	ListMine(ctx context.Context, actor entity.Actor) (*dto.PaymentListResponse, error)
}

type paymentUsecase struct {
	log         *logrus.Logger
	bookingRepo repository.BookingRepository
	paymentRepo repository.PaymentRepository
	gateway     service.PaymentGateway
}

func NewPaymentUsecase(
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	paymentRepo repository.PaymentRepository,
	gateway service.PaymentGateway,
) PaymentUsecase {
	return &paymentUsecase{
		log:         log,
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
	}
}

// CreateIntent opens a processor payment session for an unpaid booking. Only
// the owning customer may start one. A paid booking short-circuits with
// already_paid instead of charging twice; the payment flag itself only flips
// when the confirmed charge comes back through markPaid.
func (u *paymentUsecase) CreateIntent(ctx context.Context, actor entity.Actor, req *dto.CreatePaymentIntentRequest) (*dto.PaymentIntentResponse, error) {
	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	booking, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if !booking.IsOwnedBy(actor.UserID) {
		return nil, ErrForbidden
	}

	if booking.IsPaid() {
		return &dto.PaymentIntentResponse{AlreadyPaid: true}, nil
	}

	intent, err := u.gateway.CreateIntent(ctx, booking.Price, booking.ID.String())
	if err != nil {
		u.log.Warnf("Failed to create payment intent for booking %s: %+v", bookingID, err)
		return nil, err
	}

	u.log.Infof("Payment intent created: booking=%s, intent=%s", bookingID, intent.ID)
	return &dto.PaymentIntentResponse{ClientSecret: intent.ClientSecret}, nil
}

// ListMine returns the acting customer's payment history
func (u *paymentUsecase) ListMine(ctx context.Context, actor entity.Actor) (*dto.PaymentListResponse, error) {
	payments, err := u.paymentRepo.FindByCustomerID(ctx, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to list payments for customer %s: %+v", actor.UserID, err)
		return nil, err
	}

	return &dto.PaymentListResponse{
		Payments: converter.PaymentsToResponses(payments),
		Total:    len(payments),
	}, nil
}
