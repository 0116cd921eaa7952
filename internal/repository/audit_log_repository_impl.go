package repository

import (
	"errors"

	"medflow-server/internal/domain/entity"
	domainRepo "medflow-server/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(db *gorm.DB, auditLog *entity.AuditLog) error {
	return db.Create(auditLog).Error
}

func (r *auditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	var auditLog entity.AuditLog
	err := db.Preload("User").Where("id = ?", id).First(&auditLog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &auditLog, nil
}

func (r *auditLogRepository) FindAll(db *gorm.DB) ([]entity.AuditLog, error) {
	var auditLogs []entity.AuditLog
	err := db.Preload("User").Order("created_at DESC").Limit(500).Find(&auditLogs).Error
	if err != nil {
		return nil, err
	}
	return auditLogs, nil
}
