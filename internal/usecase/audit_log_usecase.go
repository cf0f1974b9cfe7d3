package usecase

import (
	"context"
	"net/http"

	"foodapp/internal/domain/model"
	repo "foodapp/internal/repository"
)

type AuditLogUsecase struct {
	auditRepo repo.AuditLogRepository
}

func NewAuditLogUsecase(auditRepo repo.AuditLogRepository) *AuditLogUsecase {
	return &AuditLogUsecase{auditRepo: auditRepo}
}

// 新しい順。limitは1..200（0なら50）
func (u *AuditLogUsecase) List(ctx context.Context, actor model.Actor, f repo.AuditLogFilter) ([]model.AuditLog, error) {
	if err := requireAdmin(actor); err != nil {
		return []model.AuditLog{}, err
	}
	if f.Limit < 0 || f.Limit > 200 {
		return []model.AuditLog{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if f.Offset < 0 {
		return []model.AuditLog{}, NewHTTPError(http.StatusBadRequest, "invalid offset")
	}

	logs, err := u.auditRepo.List(ctx, f)
	if err != nil {
		return []model.AuditLog{}, internalError(ctx, "list audit logs", err)
	}
	return logs, nil
}
