package usecase

import (
	"context"
	"errors"

	"styledecor/internal/converter"
	"styledecor/internal/delivery/dto"
	"styledecor/internal/domain/entity"
	"styledecor/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrAuditLogNotFound = errors.New("audit log not found")

type AuditLogUsecase interface {
	List(ctx context.Context, actor entity.Actor) (*dto.AuditLogListResponse, error)
	Get(ctx context.Context, actor entity.Actor, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{
		log:       log,
		auditRepo: auditRepo,
	}
}

// List returns the audit trail newest first, admin only
func (u *auditLogUsecase) List(ctx context.Context, actor entity.Actor) (*dto.AuditLogListResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	logs, err := u.auditRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}

// Get returns a single audit entry, admin only
func (u *auditLogUsecase) Get(ctx context.Context, actor entity.Actor, id int64) (*dto.AuditLogResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	auditLog, err := u.auditRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find audit log %d: %+v", id, err)
		return nil, err
	}
	if auditLog == nil {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(auditLog), nil
}
