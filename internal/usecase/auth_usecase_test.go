package usecase

import (
	"context"
	"testing"

	"styledecor/internal/delivery/dto"
	"styledecor/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	if user != nil && user.ID == uuid.Nil {
		user.ID = uuid.New() // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (int64, error) {
	args := m.Called(ctx, id, active)
	return args.Get(0).(int64), args.Error(1)
}

type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) FindByID(ctx context.Context, id int) (*entity.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Role), args.Error(1)
}

func (m *MockRoleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Role), args.Error(1)
}

type MockCustomerProfileRepository struct {
	mock.Mock
}

func (m *MockCustomerProfileRepository) Create(ctx context.Context, profile *entity.CustomerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockCustomerProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.CustomerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CustomerProfile), args.Error(1)
}

func (m *MockCustomerProfileRepository) Update(ctx context.Context, profile *entity.CustomerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

type authMocks struct {
	users    *MockUserRepository
	roles    *MockRoleRepository
	profiles *MockCustomerProfileRepository
	audit    *MockAuditService
}

// newAuthUsecase builds the usecase without Redis or JWT wiring. The tests
// here only exercise the paths that never touch tokens.
func newAuthUsecase(t *testing.T) (AuthUsecase, *authMocks) {
	t.Helper()

	m := &authMocks{
		users:    new(MockUserRepository),
		roles:    new(MockRoleRepository),
		profiles: new(MockCustomerProfileRepository),
		audit:    new(MockAuditService),
	}
	m.audit.On("LogAction", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	log := logrus.New()
	uc := NewAuthUsecase(log, m.users, m.roles, m.profiles, nil, nil, m.audit)
	return uc, m
}

func TestRegisterCustomer_Success(t *testing.T) {
	uc, m := newAuthUsecase(t)

	m.roles.On("FindByName", mock.Anything, entity.RoleCustomer).Return(&entity.Role{ID: entity.RoleIDCustomer, RoleName: entity.RoleCustomer}, nil)
	m.users.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)

	resp, err := uc.RegisterCustomer(context.Background(), &dto.RegisterCustomerRequest{
		Email:       "Nadia@Example.com",
		Password:    "secret123",
		FullName:    "Nadia Rahman",
		PhoneNumber: "01712345678",
	})

	assert.NoError(t, err)
	assert.Equal(t, "nadia@example.com", resp.Email)
	assert.Equal(t, entity.RoleCustomer, resp.Role)
	assert.True(t, resp.IsActive)

	created := m.users.Calls[0].Arguments.Get(1).(*entity.User)
	assert.Equal(t, entity.RoleIDCustomer, created.RoleID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret123")))
	assert.NotNil(t, created.CustomerProfile)
	assert.Equal(t, "01712345678", created.CustomerProfile.PhoneNumber)
	m.users.AssertExpectations(t)
}

func TestRegisterCustomer_DuplicateEmail(t *testing.T) {
	uc, m := newAuthUsecase(t)

	m.roles.On("FindByName", mock.Anything, entity.RoleCustomer).Return(&entity.Role{ID: entity.RoleIDCustomer, RoleName: entity.RoleCustomer}, nil)
	m.users.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "users_email_key",
	})

	_, err := uc.RegisterCustomer(context.Background(), &dto.RegisterCustomerRequest{
		Email:    "nadia@example.com",
		Password: "secret123",
		FullName: "Nadia Rahman",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestRegisterCustomer_RoleMissing(t *testing.T) {
	uc, m := newAuthUsecase(t)

	m.roles.On("FindByName", mock.Anything, entity.RoleCustomer).Return(nil, nil)

	_, err := uc.RegisterCustomer(context.Background(), &dto.RegisterCustomerRequest{
		Email:    "nadia@example.com",
		Password: "secret123",
		FullName: "Nadia Rahman",
	})

	assert.ErrorIs(t, err, ErrRoleNotFound)
	m.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateProfile_CreatesProfileOnFirstWrite(t *testing.T) {
	uc, m := newAuthUsecase(t)
	actor := customerActor()

	m.users.On("FindByID", mock.Anything, actor.UserID).Return(&entity.User{
		ID:       actor.UserID,
		Email:    actor.Email,
		FullName: "Nadia Rahman",
		RoleID:   entity.RoleIDCustomer,
		IsActive: true,
	}, nil)
	m.profiles.On("FindByUserID", mock.Anything, actor.UserID).Return(nil, nil)
	m.profiles.On("Create", mock.Anything, mock.AnythingOfType("*entity.CustomerProfile")).Return(nil)

	resp, err := uc.UpdateProfile(context.Background(), actor, &dto.UpdateProfileRequest{
		PhoneNumber: "01812345678",
		Address:     "House 12, Road 5, Dhanmondi",
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp.CustomerProfile)
	assert.Equal(t, "01812345678", resp.CustomerProfile.PhoneNumber)
	m.profiles.AssertExpectations(t)
	m.users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateProfile_RenameAndExistingProfile(t *testing.T) {
	uc, m := newAuthUsecase(t)
	actor := customerActor()

	m.users.On("FindByID", mock.Anything, actor.UserID).Return(&entity.User{
		ID:       actor.UserID,
		Email:    actor.Email,
		FullName: "Nadia Rahman",
		RoleID:   entity.RoleIDCustomer,
		IsActive: true,
	}, nil)
	m.users.On("Update", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)
	m.profiles.On("FindByUserID", mock.Anything, actor.UserID).Return(&entity.CustomerProfile{
		UserID:      actor.UserID,
		PhoneNumber: "01712345678",
	}, nil)
	m.profiles.On("Update", mock.Anything, mock.AnythingOfType("*entity.CustomerProfile")).Return(nil)

	resp, err := uc.UpdateProfile(context.Background(), actor, &dto.UpdateProfileRequest{
		FullName:    "Nadia R. Chowdhury",
		PhoneNumber: "01912345678",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Nadia R. Chowdhury", resp.FullName)
	assert.Equal(t, "01912345678", resp.CustomerProfile.PhoneNumber)
	m.users.AssertExpectations(t)
	m.profiles.AssertExpectations(t)
}

func TestUpdateProfile_UserNotFound(t *testing.T) {
	uc, m := newAuthUsecase(t)
	actor := customerActor()

	m.users.On("FindByID", mock.Anything, actor.UserID).Return(nil, nil)

	_, err := uc.UpdateProfile(context.Background(), actor, &dto.UpdateProfileRequest{FullName: "Anyone"})

	assert.ErrorIs(t, err, ErrUserNotFound)
}
