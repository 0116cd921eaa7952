package usecase

import (
	"context"

	"medflow-server/internal/converter"
	"medflow-server/internal/delivery/dto"
	"medflow-server/internal/domain/entity"
	"medflow-server/internal/domain/repository"
	"medflow-server/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ClinicUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateClinicRequest) (*dto.ClinicResponse, error)
	List(ctx context.Context) ([]dto.ClinicResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ClinicResponse, error)
	Update(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateClinicRequest) (*dto.ClinicResponse, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}

type clinicUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	clinicRepo   repository.ClinicRepository
	auditService service.AuditService
}

func NewClinicUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clinicRepo repository.ClinicRepository,
	auditService service.AuditService,
) ClinicUsecase {
	return &clinicUsecase{
		db:           db,
		log:          log,
		clinicRepo:   clinicRepo,
		auditService: auditService,
	}
}

func (u *clinicUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateClinicRequest) (*dto.ClinicResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	clinic := &entity.Clinic{
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		Website:      req.Website,
		Description:  req.Description,
		OpeningHours: req.OpeningHours,
		IsActive:     true,
	}

	if err := u.clinicRepo.Create(tx, clinic); err != nil {
		u.log.Warnf("Failed to create clinic: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionClinicCreate,
		"clinic", clinic.ID.String(), entity.JSON{"name": clinic.Name}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ClinicToResponse(clinic), nil
}

// List is public: registration needs a clinic to point at.
func (u *clinicUsecase) List(ctx context.Context) ([]dto.ClinicResponse, error) {
	clinics, err := u.clinicRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list clinics: %+v", err)
		return nil, err
	}
	return converter.ClinicsToResponses(clinics), nil
}

func (u *clinicUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.ClinicResponse, error) {
	clinic, err := u.clinicRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find clinic: %+v", err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}
	return converter.ClinicToResponse(clinic), nil
}

func (u *clinicUsecase) Update(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateClinicRequest) (*dto.ClinicResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	clinic, err := u.clinicRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find clinic: %+v", err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	if req.Name != "" {
		clinic.Name = req.Name
	}
	if req.Address != "" {
		clinic.Address = req.Address
	}
	if req.City != "" {
		clinic.City = req.City
	}
	if req.PostalCode != "" {
		clinic.PostalCode = req.PostalCode
	}
	if req.Country != "" {
		clinic.Country = req.Country
	}
	if req.PhoneNumber != "" {
		clinic.PhoneNumber = req.PhoneNumber
	}
	if req.Email != "" {
		clinic.Email = req.Email
	}
	if req.Website != "" {
		clinic.Website = req.Website
	}
	if req.Description != "" {
		clinic.Description = req.Description
	}
	if req.OpeningHours != nil {
		clinic.OpeningHours = req.OpeningHours
	}
	if req.IsActive != nil {
		clinic.IsActive = *req.IsActive
	}

	if err := u.clinicRepo.Update(tx, clinic); err != nil {
		u.log.Warnf("Failed to update clinic: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionClinicUpdate,
		"clinic", clinic.ID.String(), nil, entity.JSON{"name": clinic.Name}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ClinicToResponse(clinic), nil
}

func (u *clinicUsecase) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	clinic, err := u.clinicRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find clinic: %+v", err)
		return err
	}
	if clinic == nil {
		return ErrClinicNotFound
	}

	if err := u.clinicRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete clinic: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionClinicDelete,
		"clinic", id.String(), entity.JSON{"name": clinic.Name}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
