package usecase

import (
	"context"
	"testing"

	"styledecor/internal/delivery/dto"
	"styledecor/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type decoratorMocks struct {
	users      *MockUserRepository
	decorators *MockDecoratorProfileRepository
	audit      *MockAuditService
}

// Redis is nil here: only the disable path touches it, and that path is
// covered by the repository-level contract instead.
func newDecoratorUsecase(t *testing.T) (DecoratorUsecase, *decoratorMocks) {
	t.Helper()

	m := &decoratorMocks{
		users:      new(MockUserRepository),
		decorators: new(MockDecoratorProfileRepository),
		audit:      new(MockAuditService),
	}
	m.audit.On("LogAction", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	log := logrus.New()
	uc := NewDecoratorUsecase(log, m.users, m.decorators, nil, m.audit)
	return uc, m
}

func TestGetDecorator_Success(t *testing.T) {
	uc, m := newDecoratorUsecase(t)
	decoratorID := uuid.New()

	m.decorators.On("FindByUserID", mock.Anything, decoratorID).Return(&entity.DecoratorProfile{
		UserID:    decoratorID,
		Specialty: "Floral arrangements",
		TeamName:  "Team Orchid",
		User: entity.User{
			ID:       decoratorID,
			FullName: "Rashed Karim",
			IsActive: true,
		},
	}, nil)

	resp, err := uc.Get(context.Background(), adminActor(), decoratorID)

	assert.NoError(t, err)
	assert.Equal(t, "Rashed Karim", resp.FullName)
	assert.Equal(t, "Team Orchid", resp.TeamName)
}

func TestGetDecorator_Forbidden(t *testing.T) {
	uc, m := newDecoratorUsecase(t)

	_, err := uc.Get(context.Background(), decoratorActor(), uuid.New())

	assert.ErrorIs(t, err, ErrForbidden)
	m.decorators.AssertNotCalled(t, "FindByUserID", mock.Anything, mock.Anything)
}

func TestGetDecorator_NotFound(t *testing.T) {
	uc, m := newDecoratorUsecase(t)
	decoratorID := uuid.New()

	m.decorators.On("FindByUserID", mock.Anything, decoratorID).Return(nil, nil)

	_, err := uc.Get(context.Background(), adminActor(), decoratorID)

	assert.ErrorIs(t, err, ErrUnknownDecorator)
}

func TestCreateDecorator_Forbidden(t *testing.T) {
	uc, m := newDecoratorUsecase(t)

	_, err := uc.Create(context.Background(), customerActor(), &dto.CreateDecoratorRequest{
		Email:    "new@example.com",
		Password: "secret123",
		FullName: "New Decorator",
	})

	assert.ErrorIs(t, err, ErrForbidden)
	m.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSetDecoratorActive_Enable(t *testing.T) {
	uc, m := newDecoratorUsecase(t)
	decoratorID := uuid.New()

	m.decorators.On("FindByUserID", mock.Anything, decoratorID).Return(&entity.DecoratorProfile{UserID: decoratorID}, nil)
	m.users.On("SetActive", mock.Anything, decoratorID, true).Return(int64(1), nil)

	err := uc.SetActive(context.Background(), adminActor(), decoratorID, true)

	assert.NoError(t, err)
	m.users.AssertExpectations(t)
}

func TestSetDecoratorActive_UnknownDecorator(t *testing.T) {
	uc, m := newDecoratorUsecase(t)
	decoratorID := uuid.New()

	m.decorators.On("FindByUserID", mock.Anything, decoratorID).Return(nil, nil)

	err := uc.SetActive(context.Background(), adminActor(), decoratorID, true)

	assert.ErrorIs(t, err, ErrUnknownDecorator)
	m.users.AssertNotCalled(t, "SetActive", mock.Anything, mock.Anything, mock.Anything)
}
