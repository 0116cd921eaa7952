package usecase

import (
	"context"

	"medflow-server/internal/converter"
	"medflow-server/internal/delivery/dto"
	"medflow-server/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditLogUsecase interface {
	List(ctx context.Context) ([]dto.AuditLogResponse, error)
	Get(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(db *gorm.DB, log *logrus.Logger, auditLogRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) List(ctx context.Context) ([]dto.AuditLogResponse, error) {
	logs, err := u.auditLogRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, err
	}
	return converter.AuditLogsToResponses(logs), nil
}

func (u *auditLogUsecase) Get(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	log, err := u.auditLogRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find audit log: %+v", err)
		return nil, err
	}
	if log == nil {
		return nil, ErrAuditLogNotFound
	}
	return converter.AuditLogToResponse(log), nil
}
