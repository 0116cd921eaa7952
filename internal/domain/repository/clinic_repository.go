package repository

import (
	"medflow-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClinicRepository interface {
	Create(db *gorm.DB, clinic *entity.Clinic) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Clinic, error)
	FindAll(db *gorm.DB) ([]entity.Clinic, error)
	FindFirstActive(db *gorm.DB) (*entity.Clinic, error)
	Update(db *gorm.DB, clinic *entity.Clinic) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
