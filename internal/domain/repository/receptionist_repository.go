package repository

import (
	"medflow-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReceptionistRepository interface {
	Create(db *gorm.DB, receptionist *entity.Receptionist) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Receptionist, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Receptionist, error)
	FindAll(db *gorm.DB) ([]entity.Receptionist, error)
	Update(db *gorm.DB, receptionist *entity.Receptionist) error
	ReplaceServices(db *gorm.DB, receptionist *entity.Receptionist, services []entity.Service) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
