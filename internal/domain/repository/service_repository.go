package repository

import (
	"medflow-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(db *gorm.DB, service *entity.Service) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Service, error)
	FindByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.Service, error)
	FindByClinicID(db *gorm.DB, clinicID uuid.UUID) ([]entity.Service, error)
	FindAll(db *gorm.DB) ([]entity.Service, error)
	Update(db *gorm.DB, service *entity.Service) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
