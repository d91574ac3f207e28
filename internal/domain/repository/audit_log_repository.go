package repository

import (
	"context"

	"styledecor/internal/domain/entity"
)

type AuditLogRepository interface {
	Create(ctx context.Context, auditLog *entity.AuditLog) error
	FindAll(ctx context.Context) ([]entity.AuditLog, error)
	FindByID(ctx context.Context, id int64) (*entity.AuditLog, error)
}
