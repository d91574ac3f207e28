package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"styledecor/internal/converter"
	"styledecor/internal/delivery/dto"
	"styledecor/internal/domain/entity"
	"styledecor/internal/domain/repository"
	"styledecor/internal/service"
	"styledecor/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
	ErrRoleNotFound       = errors.New("role not found")
)

type AuthUsecase interface {
	RegisterCustomer(ctx context.Context, req *dto.RegisterCustomerRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, actor entity.Actor, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, actor entity.Actor, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type authUsecase struct {
	log                 *logrus.Logger
	userRepo            repository.UserRepository
	roleRepo            repository.RoleRepository
	customerProfileRepo repository.CustomerProfileRepository
	jwtService          *jwt.JWTService
	redisClient         *redis.Client
	auditService        service.AuditService
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	customerProfileRepo repository.CustomerProfileRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		log:                 log,
		userRepo:            userRepo,
		roleRepo:            roleRepo,
		customerProfileRepo: customerProfileRepo,
		jwtService:          jwtService,
		redisClient:         redisClient,
		auditService:        auditService,
	}
}

// RegisterCustomer creates a customer account with its profile. User and
// profile rows go in together through the association insert.
func (u *authUsecase) RegisterCustomer(ctx context.Context, req *dto.RegisterCustomerRequest) (*dto.UserResponse, error) {
	role, err := u.roleRepo.FindByName(ctx, entity.RoleCustomer)
	if err != nil {
		u.log.Warnf("Failed to find customer role: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:    strings.ToLower(req.Email),
		Password: string(hashedPassword),
		FullName: req.FullName,
		RoleID:   role.ID,
		IsActive: true,
		CustomerProfile: &entity.CustomerProfile{
			PhoneNumber: req.PhoneNumber,
			Address:     req.Address,
		},
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	u.auditService.LogAction(ctx, &user.ID, entity.AuditActionUserRegister, "user", user.ID.String(), nil, user.Email)

	u.log.Infof("Customer registered: id=%s, email=%s", user.ID, user.Email)
	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, user.RoleID)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, user.Email, user.RoleID)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	// Store tokens in Redis so logout and account disable revoke immediately
	accessKey := fmt.Sprintf("access_token:%s:%s", user.ID.String(), accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", user.ID.String(), refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	u.auditService.LogAction(ctx, &user.ID, entity.AuditActionUserLogin, "user", user.ID.String(), nil, nil)

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, actor entity.Actor, accessTokenID, refreshTokenID string) error {
	keys := []string{
		fmt.Sprintf("access_token:%s:%s", actor.UserID.String(), accessTokenID),
	}
	if refreshTokenID != "" {
		keys = append(keys, fmt.Sprintf("refresh_token:%s:%s", actor.UserID.String(), refreshTokenID))
	}

	if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
		u.log.Warnf("Failed to delete tokens from Redis: %+v", err)
		return err
	}

	u.auditService.LogAction(ctx, &actor.UserID, entity.AuditActionUserLogout, "user", actor.UserID.String(), nil, nil)
	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.UserID.String(), claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	// Re-read the account: a user disabled since login must not refresh, and
	// role changes must land in the new token.
	user, err := u.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", claims.UserID, err)
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrTokenRevoked
	}

	// Rotate: old refresh token is single use
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, user.RoleID)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, user.Email, user.RoleID)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKeyNew := fmt.Sprintf("access_token:%s:%s", user.ID.String(), accessTokenID)
	refreshKeyNew := fmt.Sprintf("refresh_token:%s:%s", user.ID.String(), refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKeyNew, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	if err := u.redisClient.Set(ctx, refreshKeyNew, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// UpdateProfile lets the caller edit their own name and contact details. The
// customer profile row is created on first write for accounts that predate it.
func (u *authUsecase) UpdateProfile(ctx context.Context, actor entity.Actor, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", actor.UserID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	previous := user.FullName
	if req.FullName != "" && req.FullName != user.FullName {
		user.FullName = req.FullName
		if err := u.userRepo.Update(ctx, user); err != nil {
			u.log.Warnf("Failed to update user %s: %+v", actor.UserID, err)
			return nil, err
		}
	}

	if actor.IsCustomer() {
		profile, err := u.customerProfileRepo.FindByUserID(ctx, actor.UserID)
		if err != nil {
			u.log.Warnf("Failed to find customer profile %s: %+v", actor.UserID, err)
			return nil, err
		}
		if profile == nil {
			profile = &entity.CustomerProfile{
				UserID:      actor.UserID,
				PhoneNumber: req.PhoneNumber,
				Address:     req.Address,
			}
			if err := u.customerProfileRepo.Create(ctx, profile); err != nil {
				u.log.Warnf("Failed to create customer profile %s: %+v", actor.UserID, err)
				return nil, err
			}
		} else {
			profile.PhoneNumber = req.PhoneNumber
			profile.Address = req.Address
			if err := u.customerProfileRepo.Update(ctx, profile); err != nil {
				u.log.Warnf("Failed to update customer profile %s: %+v", actor.UserID, err)
				return nil, err
			}
		}
		user.CustomerProfile = profile
	}

	u.auditService.LogAction(ctx, &actor.UserID, entity.AuditActionProfileUpdate, "user", actor.UserID.String(), previous, user.FullName)

	return converter.UserToResponse(user), nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
