package repository

import (
	"medflow-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Patient, error)
	FindByClinicID(db *gorm.DB, clinicID uuid.UUID) ([]entity.Patient, error)
	FindAll(db *gorm.DB) ([]entity.Patient, error)
	Update(db *gorm.DB, patient *entity.Patient) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
