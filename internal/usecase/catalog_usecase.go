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

type CatalogUsecase interface {
	ListServices(ctx context.Context, filter repository.ServiceFilter, limit, offset int) ([]dto.ServiceResponse, int64, error)
	GetService(ctx context.Context, serviceID uuid.UUID) (*dto.ServiceResponse, error)
	CreateService(ctx context.Context, actor entity.Actor, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	UpdateService(ctx context.Context, actor entity.Actor, serviceID uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	DeleteService(ctx context.Context, actor entity.Actor, serviceID uuid.UUID) error
}

type catalogUsecase struct {
	log          *logrus.Logger
	serviceRepo  repository.DecorServiceRepository
	auditService service.AuditService
}

func NewCatalogUsecase(
	log *logrus.Logger,
	serviceRepo repository.DecorServiceRepository,
	auditService service.AuditService,
) CatalogUsecase {
	return &catalogUsecase{
		log:          log,
		serviceRepo:  serviceRepo,
		auditService: auditService,
	}
}

// ListServices returns the catalog page matching the filter. The public
// endpoint forces ActiveOnly; the admin listing leaves it off.
func (u *catalogUsecase) ListServices(ctx context.Context, filter repository.ServiceFilter, limit, offset int) ([]dto.ServiceResponse, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	services, total, err := u.serviceRepo.FindAll(ctx, filter, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list services: %+v", err)
		return nil, 0, err
	}

	return converter.ServicesToResponses(services), total, nil
}

func (u *catalogUsecase) GetService(ctx context.Context, serviceID uuid.UUID) (*dto.ServiceResponse, error) {
	decorService, err := u.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", serviceID, err)
		return nil, err
	}
	if decorService == nil {
		return nil, ErrServiceNotFound
	}

	return converter.ServiceToResponse(decorService), nil
}

// CreateService adds a catalog entry. Decorators may propose packages too;
// editing and removal stay admin only.
func (u *catalogUsecase) CreateService(ctx context.Context, actor entity.Actor, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if !actor.IsAdmin() && !actor.IsDecorator() {
		return nil, ErrForbidden
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	durationMins := req.DurationMins
	if durationMins == 0 {
		durationMins = 60
	}

	decorService := &entity.DecorService{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		Type:         req.Type,
		DurationMins: durationMins,
		ImageURL:     req.ImageURL,
		Tags:         req.Tags,
		Active:       active,
	}

	if err := u.serviceRepo.Create(ctx, decorService); err != nil {
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}

	u.auditService.LogAction(ctx, &actor.UserID, entity.AuditActionServiceCreate, "decor_service", decorService.ID.String(), nil, decorService)

	u.log.Infof("Service created: id=%s, title=%s", decorService.ID, decorService.Title)
	return converter.ServiceToResponse(decorService), nil
}

// UpdateService replaces the catalog entry. Existing bookings keep their
// snapshotted title and price regardless.
func (u *catalogUsecase) UpdateService(ctx context.Context, actor entity.Actor, serviceID uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	decorService, err := u.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", serviceID, err)
		return nil, err
	}
	if decorService == nil {
		return nil, ErrServiceNotFound
	}

	previous := *decorService

	decorService.Title = req.Title
	decorService.Description = req.Description
	decorService.Price = req.Price
	decorService.Category = req.Category
	decorService.Type = req.Type
	if req.DurationMins != 0 {
		decorService.DurationMins = req.DurationMins
	}
	decorService.ImageURL = req.ImageURL
	decorService.Tags = req.Tags
	if req.Active != nil {
		decorService.Active = *req.Active
	}

	if err := u.serviceRepo.Update(ctx, decorService); err != nil {
		u.log.Warnf("Failed to update service %s: %+v", serviceID, err)
		return nil, err
	}

	u.auditService.LogAction(ctx, &actor.UserID, entity.AuditActionServiceUpdate, "decor_service", serviceID.String(), previous, decorService)

	return converter.ServiceToResponse(decorService), nil
}

func (u *catalogUsecase) DeleteService(ctx context.Context, actor entity.Actor, serviceID uuid.UUID) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	decorService, err := u.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", serviceID, err)
		return err
	}
	if decorService == nil {
		return ErrServiceNotFound
	}

	if err := u.serviceRepo.Delete(ctx, serviceID); err != nil {
		u.log.Warnf("Failed to delete service %s: %+v", serviceID, err)
		return err
	}

	u.auditService.LogAction(ctx, &actor.UserID, entity.AuditActionServiceDelete, "decor_service", serviceID.String(), decorService, nil)

	u.log.Infof("Service deleted: id=%s, title=%s", serviceID, decorService.Title)
	return nil
}
