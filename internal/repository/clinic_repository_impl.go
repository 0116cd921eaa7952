package repository

import (
	"errors"

	"medflow-server/internal/domain/entity"
	domainRepo "medflow-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clinicRepository struct{}

func NewClinicRepository() domainRepo.ClinicRepository {
	return &clinicRepository{}
}

func (r *clinicRepository) Create(db *gorm.DB, clinic *entity.Clinic) error {
	return db.Create(clinic).Error
}

func (r *clinicRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Clinic, error) {
	var clinic entity.Clinic
	err := db.Where("id = ?", id).First(&clinic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &clinic, nil
}

func (r *clinicRepository) FindAll(db *gorm.DB) ([]entity.Clinic, error) {
	var clinics []entity.Clinic
	if err := db.Order("name ASC").Find(&clinics).Error; err != nil {
		return nil, err
	}
	return clinics, nil
}

func (r *clinicRepository) FindFirstActive(db *gorm.DB) (*entity.Clinic, error) {
	var clinic entity.Clinic
	err := db.Where("is_active = ?", true).Order("created_at ASC").First(&clinic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &clinic, nil
}

func (r *clinicRepository) Update(db *gorm.DB, clinic *entity.Clinic) error {
	return db.Save(clinic).Error
}

func (r *clinicRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Clinic{}).Error
}
