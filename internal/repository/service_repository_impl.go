package repository

import (
	"errors"

	"medflow-server/internal/domain/entity"
	domainRepo "medflow-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type serviceRepository struct{}

func NewServiceRepository() domainRepo.ServiceRepository {
	return &serviceRepository{}
}

func (r *serviceRepository) Create(db *gorm.DB, service *entity.Service) error {
	return db.Create(service).Error
}

func (r *serviceRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Service, error) {
	var service entity.Service
	err := db.Where("id = ?", id).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) FindByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.Service, error) {
	var services []entity.Service
	if len(ids) == 0 {
		return services, nil
	}
	if err := db.Where("id IN ?", ids).Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) FindByClinicID(db *gorm.DB, clinicID uuid.UUID) ([]entity.Service, error) {
	var services []entity.Service
	err := db.Where("clinic_id = ?", clinicID).Order("name ASC").Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) FindAll(db *gorm.DB) ([]entity.Service, error) {
	var services []entity.Service
	if err := db.Order("name ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) Update(db *gorm.DB, service *entity.Service) error {
	return db.Save(service).Error
}

func (r *serviceRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Service{}).Error
}
