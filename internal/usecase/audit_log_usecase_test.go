package usecase

import (
	"context"
	"testing"

	"styledecor/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Create(ctx context.Context, auditLog *entity.AuditLog) error {
	args := m.Called(ctx, auditLog)
	return args.Error(0)
}

func (m *MockAuditLogRepository) FindAll(ctx context.Context) ([]entity.AuditLog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.AuditLog), args.Error(1)
}

func (m *MockAuditLogRepository) FindByID(ctx context.Context, id int64) (*entity.AuditLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AuditLog), args.Error(1)
}

func newAuditLogUsecase(t *testing.T) (AuditLogUsecase, *MockAuditLogRepository) {
	t.Helper()
	repo := new(MockAuditLogRepository)
	return NewAuditLogUsecase(logrus.New(), repo), repo
}

func TestListAuditLogs_AdminOnly(t *testing.T) {
	uc, repo := newAuditLogUsecase(t)

	_, err := uc.List(context.Background(), customerActor())
	assert.ErrorIs(t, err, ErrForbidden)

	userID := uuid.New()
	repo.On("FindAll", mock.Anything).Return([]entity.AuditLog{
		{ID: 2, UserID: &userID, Action: entity.AuditActionBookingPay},
		{ID: 1, UserID: &userID, Action: entity.AuditActionBookingCreate},
	}, nil)

	resp, err := uc.List(context.Background(), adminActor())
	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, entity.AuditActionBookingPay, resp.Logs[0].Action)
}

func TestGetAuditLog_NotFound(t *testing.T) {
	uc, repo := newAuditLogUsecase(t)

	repo.On("FindByID", mock.Anything, int64(42)).Return(nil, nil)

	_, err := uc.Get(context.Background(), adminActor(), 42)
	assert.ErrorIs(t, err, ErrAuditLogNotFound)
}

func TestGetAuditLog_Success(t *testing.T) {
	uc, repo := newAuditLogUsecase(t)

	repo.On("FindByID", mock.Anything, int64(7)).Return(&entity.AuditLog{
		ID:     7,
		Action: entity.AuditActionBookingAssign,
	}, nil)

	resp, err := uc.Get(context.Background(), adminActor(), 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, entity.AuditActionBookingAssign, resp.Action)
}
