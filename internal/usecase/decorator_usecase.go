package usecase

import (
	"context"
	"fmt"
	"strings"

	"styledecor/internal/converter"
	"styledecor/internal/delivery/dto"
	"styledecor/internal/domain/entity"
	"styledecor/internal/domain/repository"
	"styledecor/internal/service"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type DecoratorUsecase interface {
	ListActive(ctx context.Context) (*dto.DecoratorListResponse, error)
	List(ctx context.Context, actor entity.Actor) (*dto.DecoratorListResponse, error)
	Get(ctx context.Context, actor entity.Actor, decoratorID uuid.UUID) (*dto.DecoratorResponse, error)
	Create(ctx context.Context, actor entity.Actor, req *dto.CreateDecoratorRequest) (*dto.DecoratorResponse, error)
	Update(ctx context.Context, actor entity.Actor, decoratorID uuid.UUID, req *dto.UpdateDecoratorRequest) (*dto.DecoratorResponse, error)
	SetActive(ctx context.Context, actor entity.Actor, decoratorID uuid.UUID, active bool) error
}

type decoratorUsecase struct {
	log           *logrus.Logger
	userRepo      repository.UserRepository
	decoratorRepo repository.DecoratorProfileRepository
	redisClient   *redis.Client
	auditService  service.AuditService
}

func NewDecoratorUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	decoratorRepo repository.DecoratorProfileRepository,
	redisClient *redis.Client,
	auditService service.AuditService,
) DecoratorUsecase {
	return &decoratorUsecase{
		log:           log,
		userRepo:      userRepo,
		decoratorRepo: decoratorRepo,
		redisClient:   redisClient,
		auditService:  auditService,
	}
}

// ListActive returns enabled decorators for the public team page
func (u *decoratorUsecase) ListActive(ctx context.Context) (*dto.DecoratorListResponse, error) {
	profiles, err := u.decoratorRepo.FindAllActive(ctx)
	if err != nil {
		u.log.Warnf("Failed to list active decorators: %+v", err)
		return nil, err
	}

	return &dto.DecoratorListResponse{
		Decorators: converter.DecoratorsToResponses(profiles),
		Total:      len(profiles),
	}, nil
}

// List returns every decorator including disabled ones, admin only
func (u *decoratorUsecase) List(ctx context.Context, actor entity.Actor) (*dto.DecoratorListResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	profiles, err := u.decoratorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list decorators: %+v", err)
		return nil, err
	}

	return &dto.DecoratorListResponse{
		Decorators: converter.DecoratorsToResponses(profiles),
		Total:      len(profiles),
	}, nil
}

// Get returns one decorator including disabled ones, admin only
func (u *decoratorUsecase) Get(ctx context.Context, actor entity.Actor, decoratorID uuid.UUID) (*dto.DecoratorResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	profile, err := u.decoratorRepo.FindByUserID(ctx, decoratorID)
	if err != nil {
		u.log.Warnf("Failed to find decorator %s: %+v", decoratorID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrUnknownDecorator
	}

	return converter.DecoratorToResponse(profile), nil
}

// Create provisions a decorator account with its profile, admin only
func (u *decoratorUsecase) Create(ctx context.Context, actor entity.Actor, req *dto.CreateDecoratorRequest) (*dto.DecoratorResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
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
		RoleID:   entity.RoleIDDecorator,
		IsActive: true,
		DecoratorProfile: &entity.DecoratorProfile{
			Specialty: req.Specialty,
			TeamName:  req.TeamName,
			Biography: req.Biography,
			PhotoURL:  req.PhotoURL,
		},
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create decorator: %+v", err)
		return nil, err
	}

	u.auditService.LogAction(ctx, &actor.UserID, entity.AuditActionDecoratorCreate, "decorator", user.ID.String(), nil, user.Email)

	u.log.Infof("Decorator created: id=%s, email=%s, specialty=%s", user.ID, user.Email, req.Specialty)

	profile := user.DecoratorProfile
	profile.User = *user
	return converter.DecoratorToResponse(profile), nil
}

// Update edits a decorator's name and profile, admin only
func (u *decoratorUsecase) Update(ctx context.Context, actor entity.Actor, decoratorID uuid.UUID, req *dto.UpdateDecoratorRequest) (*dto.DecoratorResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	profile, err := u.decoratorRepo.FindByUserID(ctx, decoratorID)
	if err != nil {
		u.log.Warnf("Failed to find decorator %s: %+v", decoratorID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrUnknownDecorator
	}

	previous := *profile

	profile.Specialty = req.Specialty
	profile.TeamName = req.TeamName
	profile.Biography = req.Biography
	profile.PhotoURL = req.PhotoURL

	if err := u.decoratorRepo.Update(ctx, profile); err != nil {
		u.log.Warnf("Failed to update decorator %s: %+v", decoratorID, err)
		return nil, err
	}

	if req.FullName != profile.User.FullName {
		user, err := u.userRepo.FindByID(ctx, decoratorID)
		if err != nil || user == nil {
			u.log.Warnf("Failed to reload decorator user %s: %+v", decoratorID, err)
		} else {
			user.FullName = req.FullName
			if err := u.userRepo.Update(ctx, user); err != nil {
				u.log.Warnf("Failed to update decorator name %s: %+v", decoratorID, err)
				return nil, err
			}
			profile.User = *user
		}
	}

	u.auditService.LogAction(ctx, &actor.UserID, entity.AuditActionDecoratorUpdate, "decorator", decoratorID.String(), previous, profile)

	return converter.DecoratorToResponse(profile), nil
}

// SetActive enables or disables a decorator account, admin only. Disabling
// revokes every live session so the decorator drops out immediately, and
// removes them from the assignment pool; bookings already assigned stay put.
func (u *decoratorUsecase) SetActive(ctx context.Context, actor entity.Actor, decoratorID uuid.UUID, active bool) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	profile, err := u.decoratorRepo.FindByUserID(ctx, decoratorID)
	if err != nil {
		u.log.Warnf("Failed to find decorator %s: %+v", decoratorID, err)
		return err
	}
	if profile == nil {
		return ErrUnknownDecorator
	}

	affected, err := u.userRepo.SetActive(ctx, decoratorID, active)
	if err != nil {
		u.log.Warnf("Failed to set decorator %s active=%t: %+v", decoratorID, active, err)
		return err
	}
	if affected == 0 {
		return ErrUnknownDecorator
	}

	if !active {
		u.revokeAllTokens(ctx, decoratorID)
	}

	u.auditService.LogAction(ctx, &actor.UserID, entity.AuditActionDecoratorActive, "decorator", decoratorID.String(), !active, active)

	u.log.Infof("Decorator active flag set: id=%s, active=%t", decoratorID, active)
	return nil
}

// revokeAllTokens drops every Redis-backed session for the user. Failures are
// logged only: the account flag already blocks refresh.
func (u *decoratorUsecase) revokeAllTokens(ctx context.Context, userID uuid.UUID) {
	for _, pattern := range []string{
		fmt.Sprintf("access_token:%s:*", userID.String()),
		fmt.Sprintf("refresh_token:%s:*", userID.String()),
	} {
		keys, err := u.redisClient.Keys(ctx, pattern).Result()
		if err != nil {
			u.log.Warnf("Failed to list tokens for %s: %+v", userID, err)
			continue
		}
		if len(keys) == 0 {
			continue
		}
		if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
			u.log.Warnf("Failed to revoke tokens for %s: %+v", userID, err)
		}
	}
}
