package usecase

import (
	"context"
	"testing"

	"styledecor/internal/delivery/dto"
	"styledecor/internal/domain/entity"
	"styledecor/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock repositories

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)
	if booking != nil && booking.ID == uuid.Nil {
		booking.ID = uuid.New() // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]entity.Booking, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByDecoratorID(ctx context.Context, decoratorID uuid.UUID) ([]entity.Booking, error) {
	args := m.Called(ctx, decoratorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindAll(ctx context.Context) ([]entity.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatusIfActive(ctx context.Context, id uuid.UUID, status entity.BookingStatus) (int64, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) UpdateAssignmentIfEligible(ctx context.Context, id uuid.UUID, decoratorID *uuid.UUID, team string) (int64, error) {
	args := m.Called(ctx, id, decoratorID, team)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) MarkPaidIfUnpaid(ctx context.Context, id uuid.UUID, transactionID string) (int64, error) {
	args := m.Called(ctx, id, transactionID)
	return args.Get(0).(int64), args.Error(1)
}

type MockDecorServiceRepository struct {
	mock.Mock
}

func (m *MockDecorServiceRepository) Create(ctx context.Context, service *entity.DecorService) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockDecorServiceRepository) FindAll(ctx context.Context, filter repository.ServiceFilter, limit, offset int) ([]entity.DecorService, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.DecorService), args.Get(1).(int64), args.Error(2)
}

func (m *MockDecorServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DecorService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DecorService), args.Error(1)
}

func (m *MockDecorServiceRepository) Update(ctx context.Context, service *entity.DecorService) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockDecorServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDecoratorProfileRepository struct {
	mock.Mock
}

func (m *MockDecoratorProfileRepository) Create(ctx context.Context, profile *entity.DecoratorProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockDecoratorProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.DecoratorProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DecoratorProfile), args.Error(1)
}

func (m *MockDecoratorProfileRepository) FindAll(ctx context.Context) ([]entity.DecoratorProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.DecoratorProfile), args.Error(1)
}

func (m *MockDecoratorProfileRepository) FindAllActive(ctx context.Context) ([]entity.DecoratorProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.DecoratorProfile), args.Error(1)
}

func (m *MockDecoratorProfileRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) (*entity.DecoratorProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DecoratorProfile), args.Error(1)
}

func (m *MockDecoratorProfileRepository) Update(ctx context.Context, profile *entity.DecoratorProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]entity.Payment, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Payment), args.Error(1)
}

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogAction(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	args := m.Called(ctx, userID, action, entityName, entityID, oldValue, newValue)
	return args.Error(0)
}

type bookingMocks struct {
	bookings   *MockBookingRepository
	services   *MockDecorServiceRepository
	decorators *MockDecoratorProfileRepository
	payments   *MockPaymentRepository
	audit      *MockAuditService
}

func newBookingUsecase(t *testing.T) (BookingUsecase, *bookingMocks) {
	t.Helper()

	m := &bookingMocks{
		bookings:   new(MockBookingRepository),
		services:   new(MockDecorServiceRepository),
		decorators: new(MockDecoratorProfileRepository),
		payments:   new(MockPaymentRepository),
		audit:      new(MockAuditService),
	}
	m.audit.On("LogAction", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	log := logrus.New()
	uc := NewBookingUsecase(log, m.bookings, m.services, m.decorators, m.payments, m.audit)
	return uc, m
}

func customerActor() entity.Actor {
	return entity.Actor{UserID: uuid.New(), Email: "customer@example.com", RoleID: entity.RoleIDCustomer}
}

func adminActor() entity.Actor {
	return entity.Actor{UserID: uuid.New(), Email: "admin@example.com", RoleID: entity.RoleIDAdmin}
}

func decoratorActor() entity.Actor {
	return entity.Actor{UserID: uuid.New(), Email: "decorator@example.com", RoleID: entity.RoleIDDecorator}
}

func TestCreateBooking_Success(t *testing.T) {
	uc, m := newBookingUsecase(t)
	actor := customerActor()

	serviceID := uuid.New()
	m.services.On("FindByID", mock.Anything, serviceID).Return(&entity.DecorService{
		ID:     serviceID,
		Title:  "Wedding Stage Decoration",
		Price:  decimal.NewFromInt(25000),
		Active: true,
	}, nil)
	m.bookings.On("Create", mock.Anything, mock.AnythingOfType("*entity.Booking")).Return(nil)

	resp, err := uc.Create(context.Background(), actor, &dto.CreateBookingRequest{
		ServiceID:    serviceID.String(),
		EventDate:    "2026-10-15",
		Slot:         "evening",
		Venue:        "Grand Hall",
		Phone:        "01712345678",
		CustomerName: "Nadia Rahman",
	})

	assert.NoError(t, err)
	assert.Equal(t, "assigned", resp.Status)
	assert.Equal(t, "unpaid", resp.PaymentStatus)
	assert.Equal(t, actor.UserID, resp.CustomerID)
	assert.Equal(t, "Wedding Stage Decoration", resp.ServiceTitle)
	assert.True(t, resp.Price.Equal(decimal.NewFromInt(25000)))
	m.bookings.AssertExpectations(t)
}

func TestCreateBooking_ServiceNotFound(t *testing.T) {
	uc, m := newBookingUsecase(t)

	serviceID := uuid.New()
	m.services.On("FindByID", mock.Anything, serviceID).Return(nil, nil)

	_, err := uc.Create(context.Background(), customerActor(), &dto.CreateBookingRequest{
		ServiceID:    serviceID.String(),
		EventDate:    "2026-10-15",
		Slot:         "morning",
		Venue:        "Home",
		Phone:        "01712345678",
		CustomerName: "Nadia Rahman",
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCreateBooking_InactiveService(t *testing.T) {
	uc, m := newBookingUsecase(t)

	serviceID := uuid.New()
	m.services.On("FindByID", mock.Anything, serviceID).Return(&entity.DecorService{
		ID:     serviceID,
		Title:  "Retired Package",
		Price:  decimal.NewFromInt(5000),
		Active: false,
	}, nil)

	_, err := uc.Create(context.Background(), customerActor(), &dto.CreateBookingRequest{
		ServiceID:    serviceID.String(),
		EventDate:    "2026-10-15",
		Slot:         "morning",
		Venue:        "Home",
		Phone:        "01712345678",
		CustomerName: "Nadia Rahman",
	})

	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestGetByID_Visibility(t *testing.T) {
	uc, m := newBookingUsecase(t)

	owner := customerActor()
	assigned := decoratorActor()
	bookingID := uuid.New()

	booking := &entity.Booking{
		ID:                  bookingID,
		CustomerID:          owner.UserID,
		Status:              entity.BookingStatusPlanning,
		AssignedDecoratorID: &assigned.UserID,
	}
	m.bookings.On("FindByID", mock.Anything, bookingID).Return(booking, nil)

	_, err := uc.GetByID(context.Background(), owner, bookingID)
	assert.NoError(t, err)

	_, err = uc.GetByID(context.Background(), assigned, bookingID)
	assert.NoError(t, err)

	_, err = uc.GetByID(context.Background(), adminActor(), bookingID)
	assert.NoError(t, err)

	_, err = uc.GetByID(context.Background(), customerActor(), bookingID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = uc.GetByID(context.Background(), decoratorActor(), bookingID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestListMine_OnlyQueriesOwnBookings(t *testing.T) {
	uc, m := newBookingUsecase(t)
	actor := customerActor()

	m.bookings.On("FindByCustomerID", mock.Anything, actor.UserID).Return([]entity.Booking{
		{ID: uuid.New(), CustomerID: actor.UserID, Status: entity.BookingStatusAssigned},
	}, nil)

	resp, err := uc.ListMine(context.Background(), actor)
	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	m.bookings.AssertCalled(t, "FindByCustomerID", mock.Anything, actor.UserID)
}

func TestListAll_NonAdminForbidden(t *testing.T) {
	uc, _ := newBookingUsecase(t)

	_, err := uc.ListAll(context.Background(), customerActor())
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = uc.ListAll(context.Background(), decoratorActor())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAssign_Success(t *testing.T) {
	uc, m := newBookingUsecase(t)
	admin := adminActor()

	bookingID := uuid.New()
	decoratorID := uuid.New()
	decoratorIDStr := decoratorID.String()

	booking := &entity.Booking{
		ID:            bookingID,
		Status:        entity.BookingStatusAssigned,
		PaymentStatus: entity.PaymentStatusPaid,
	}
	m.bookings.On("FindByID", mock.Anything, bookingID).Return(booking, nil)
	m.decorators.On("FindActiveByUserID", mock.Anything, decoratorID).Return(&entity.DecoratorProfile{
		UserID:    decoratorID,
		Specialty: "Floral",
	}, nil)
	m.bookings.On("UpdateAssignmentIfEligible", mock.Anything, bookingID, &decoratorID, "Team Orchid").Return(int64(1), nil)

	_, err := uc.Assign(context.Background(), admin, bookingID, &dto.AssignBookingRequest{
		DecoratorID: &decoratorIDStr,
		Team:        "Team Orchid",
	})

	assert.NoError(t, err)
	m.bookings.AssertExpectations(t)
}

func TestAssign_NonAdminForbidden(t *testing.T) {
	uc, _ := newBookingUsecase(t)

	_, err := uc.Assign(context.Background(), customerActor(), uuid.New(), &dto.AssignBookingRequest{})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAssign_UnknownDecorator(t *testing.T) {
	uc, m := newBookingUsecase(t)

	bookingID := uuid.New()
	decoratorID := uuid.New()
	decoratorIDStr := decoratorID.String()

	m.bookings.On("FindByID", mock.Anything, bookingID).Return(&entity.Booking{
		ID:            bookingID,
		PaymentStatus: entity.PaymentStatusPaid,
	}, nil)
	// Disabled accounts and non-decorator roles both resolve to nil
	m.decorators.On("FindActiveByUserID", mock.Anything, decoratorID).Return(nil, nil)

	_, err := uc.Assign(context.Background(), adminActor(), bookingID, &dto.AssignBookingRequest{
		DecoratorID: &decoratorIDStr,
	})

	assert.ErrorIs(t, err, ErrUnknownDecorator)
}

func TestAssign_UnpaidBookingRejected(t *testing.T) {
	uc, m := newBookingUsecase(t)

	bookingID := uuid.New()
	unpaid := &entity.Booking{
		ID:            bookingID,
		Status:        entity.BookingStatusAssigned,
		PaymentStatus: entity.PaymentStatusUnpaid,
	}
	m.bookings.On("FindByID", mock.Anything, bookingID).Return(unpaid, nil)
	m.bookings.On("UpdateAssignmentIfEligible", mock.Anything, bookingID, (*uuid.UUID)(nil), "").Return(int64(0), nil)

	_, err := uc.Assign(context.Background(), adminActor(), bookingID, &dto.AssignBookingRequest{})
	assert.ErrorIs(t, err, ErrPaymentRequired)
}

func TestAssign_CancelledBookingRejected(t *testing.T) {
	uc, m := newBookingUsecase(t)

	bookingID := uuid.New()
	cancelled := &entity.Booking{
		ID:            bookingID,
		Status:        entity.BookingStatusCancelled,
		PaymentStatus: entity.PaymentStatusPaid,
	}
	m.bookings.On("FindByID", mock.Anything, bookingID).Return(cancelled, nil)
	m.bookings.On("UpdateAssignmentIfEligible", mock.Anything, bookingID, (*uuid.UUID)(nil), "").Return(int64(0), nil)

	_, err := uc.Assign(context.Background(), adminActor(), bookingID, &dto.AssignBookingRequest{})
	assert.ErrorIs(t, err, ErrBookingCancelled)
}

func TestUpdateStatus_AssignedDecoratorMovesBackward(t *testing.T) {
	uc, m := newBookingUsecase(t)
	decorator := decoratorActor()

	bookingID := uuid.New()
	booking := &entity.Booking{
		ID:                  bookingID,
		Status:              entity.BookingStatusSetup,
		AssignedDecoratorID: &decorator.UserID,
	}
	m.bookings.On("FindByID", mock.Anything, bookingID).Return(booking, nil)
	m.bookings.On("UpdateStatusIfActive", mock.Anything, bookingID, entity.BookingStatusPlanning).Return(int64(1), nil)

	// Steps are freely selectable: setup back to planning is allowed
	resp, err := uc.UpdateStatus(context.Background(), decorator, bookingID, &dto.UpdateBookingStatusRequest{Status: "planning"})

	assert.NoError(t, err)
	assert.Equal(t, "planning", resp.Status)
}

func TestUpdateStatus_NotAssignedDecorator(t *testing.T) {
	uc, m := newBookingUsecase(t)

	bookingID := uuid.New()
	other := uuid.New()
	m.bookings.On("FindByID", mock.Anything, bookingID).Return(&entity.Booking{
		ID:                  bookingID,
		Status:              entity.BookingStatusPlanning,
		AssignedDecoratorID: &other,
	}, nil)

	_, err := uc.UpdateStatus(context.Background(), decoratorActor(), bookingID, &dto.UpdateBookingStatusRequest{Status: "materials"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateStatus_CancelledStatusNotAWorkStep(t *testing.T) {
	uc, _ := newBookingUsecase(t)

	_, err := uc.UpdateStatus(context.Background(), decoratorActor(), uuid.New(), &dto.UpdateBookingStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_TerminalBookingRejected(t *testing.T) {
	uc, m := newBookingUsecase(t)
	decorator := decoratorActor()

	bookingID := uuid.New()
	m.bookings.On("FindByID", mock.Anything, bookingID).Return(&entity.Booking{
		ID:                  bookingID,
		Status:              entity.BookingStatusComplete,
		AssignedDecoratorID: &decorator.UserID,
	}, nil)
	m.bookings.On("UpdateStatusIfActive", mock.Anything, bookingID, entity.BookingStatusSetup).Return(int64(0), nil)

	_, err := uc.UpdateStatus(context.Background(), decorator, bookingID, &dto.UpdateBookingStatusRequest{Status: "setup"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancel_OwnerSuccess(t *testing.T) {
	uc, m := newBookingUsecase(t)
	owner := customerActor()

	bookingID := uuid.New()
	m.bookings.On("FindByID", mock.Anything, bookingID).Return(&entity.Booking{
		ID:         bookingID,
		CustomerID: owner.UserID,
		Status:     entity.BookingStatusPlanning,
	}, nil)
	m.bookings.On("UpdateStatusIfActive", mock.Anything, bookingID, entity.BookingStatusCancelled).Return(int64(1), nil)

	err := uc.Cancel(context.Background(), owner, bookingID)
	assert.NoError(t, err)
}

func TestCancel_NonOwnerForbidden(t *testing.T) {
	uc, m := newBookingUsecase(t)

	bookingID := uuid.New()
	m.bookings.On("FindByID", mock.Anything, bookingID).Return(&entity.Booking{
		ID:         bookingID,
		CustomerID: uuid.New(),
		Status:     entity.BookingStatusAssigned,
	}, nil)

	err := uc.Cancel(context.Background(), customerActor(), bookingID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCancel_AlreadyTerminal(t *testing.T) {
	uc, m := newBookingUsecase(t)
	owner := customerActor()

	bookingID := uuid.New()
	m.bookings.On("FindByID", mock.Anything, bookingID).Return(&entity.Booking{
		ID:         bookingID,
		CustomerID: owner.UserID,
		Status:     entity.BookingStatusComplete,
	}, nil)
	m.bookings.On("UpdateStatusIfActive", mock.Anything, bookingID, entity.BookingStatusCancelled).Return(int64(0), nil)

	err := uc.Cancel(context.Background(), owner, bookingID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestMarkPaid_FirstCompletionWins(t *testing.T) {
	uc, m := newBookingUsecase(t)
	owner := customerActor()

	bookingID := uuid.New()
	m.bookings.On("FindByID", mock.Anything, bookingID).Return(&entity.Booking{
		ID:            bookingID,
		CustomerID:    owner.UserID,
		ServiceTitle:  "Birthday Backdrop",
		Price:         decimal.NewFromInt(8000),
		Status:        entity.BookingStatusAssigned,
		PaymentStatus: entity.PaymentStatusUnpaid,
	}, nil)
	m.bookings.On("MarkPaidIfUnpaid", mock.Anything, bookingID, "txn_001").Return(int64(1), nil)
	m.payments.On("Create", mock.Anything, mock.AnythingOfType("*entity.Payment")).Return(nil)

	resp, err := uc.MarkPaid(context.Background(), owner, bookingID, &dto.MarkPaidRequest{TransactionID: "txn_001"})

	assert.NoError(t, err)
	assert.Equal(t, "paid", resp.PaymentStatus)
	assert.Equal(t, "txn_001", *resp.TransactionID)
	m.payments.AssertExpectations(t)
}

func TestMarkPaid_RepeatIsIdempotentNoOp(t *testing.T) {
	uc, m := newBookingUsecase(t)
	owner := customerActor()

	bookingID := uuid.New()
	firstTxn := "txn_001"
	m.bookings.On("FindByID", mock.Anything, bookingID).Return(&entity.Booking{
		ID:            bookingID,
		CustomerID:    owner.UserID,
		Status:        entity.BookingStatusAssigned,
		PaymentStatus: entity.PaymentStatusPaid,
		TransactionID: &firstTxn,
	}, nil)
	m.bookings.On("MarkPaidIfUnpaid", mock.Anything, bookingID, "txn_002").Return(int64(0), nil)

	resp, err := uc.MarkPaid(context.Background(), owner, bookingID, &dto.MarkPaidRequest{TransactionID: "txn_002"})

	// Repeat succeeds but keeps the original transaction id and writes no
	// second ledger row
	assert.NoError(t, err)
	assert.Equal(t, "paid", resp.PaymentStatus)
	assert.Equal(t, "txn_001", *resp.TransactionID)
	m.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMarkPaid_CancelledBookingStillPayable(t *testing.T) {
	uc, m := newBookingUsecase(t)
	owner := customerActor()

	// Payment settles independently of the work lifecycle: a customer who
	// cancelled can still complete the charge that was already in flight.
	bookingID := uuid.New()
	m.bookings.On("FindByID", mock.Anything, bookingID).Return(&entity.Booking{
		ID:            bookingID,
		CustomerID:    owner.UserID,
		ServiceTitle:  "Corporate Gala Setup",
		Price:         decimal.NewFromInt(40000),
		Status:        entity.BookingStatusCancelled,
		PaymentStatus: entity.PaymentStatusUnpaid,
	}, nil)
	m.bookings.On("MarkPaidIfUnpaid", mock.Anything, bookingID, "txn_late").Return(int64(1), nil)
	m.payments.On("Create", mock.Anything, mock.AnythingOfType("*entity.Payment")).Return(nil)

	resp, err := uc.MarkPaid(context.Background(), owner, bookingID, &dto.MarkPaidRequest{TransactionID: "txn_late"})

	assert.NoError(t, err)
	assert.Equal(t, "paid", resp.PaymentStatus)
	assert.Equal(t, "cancelled", resp.Status)
}

func TestMarkPaid_NonOwnerForbidden(t *testing.T) {
	uc, m := newBookingUsecase(t)

	bookingID := uuid.New()
	m.bookings.On("FindByID", mock.Anything, bookingID).Return(&entity.Booking{
		ID:         bookingID,
		CustomerID: uuid.New(),
	}, nil)

	_, err := uc.MarkPaid(context.Background(), customerActor(), bookingID, &dto.MarkPaidRequest{TransactionID: "txn_x"})
	assert.ErrorIs(t, err, ErrForbidden)
}
