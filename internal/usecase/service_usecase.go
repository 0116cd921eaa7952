package usecase

import (
	"context"

	"medflow-server/internal/converter"
	"medflow-server/internal/delivery/dto"
	"medflow-server/internal/domain/entity"
	"medflow-server/internal/domain/repository"
	"medflow-server/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ServiceUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	List(ctx context.Context, actorID uuid.UUID) ([]dto.ServiceResponse, error)
	Get(ctx context.Context, actorID, id uuid.UUID) (*dto.ServiceResponse, error)
	Update(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}

type serviceUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	serviceRepo   repository.ServiceRepository
	clinicRepo    repository.ClinicRepository
	actorResolver *ActorResolver
	auditService  service.AuditService
}

func NewServiceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	serviceRepo repository.ServiceRepository,
	clinicRepo repository.ClinicRepository,
	actorResolver *ActorResolver,
	auditService service.AuditService,
) ServiceUsecase {
	return &serviceUsecase{
		db:            db,
		log:           log,
		serviceRepo:   serviceRepo,
		clinicRepo:    clinicRepo,
		actorResolver: actorResolver,
		auditService:  auditService,
	}
}

func (u *serviceUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	actor, err := u.actorResolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}

	clinicID, err := parseUUID(req.ClinicID)
	if err != nil {
		return nil, err
	}

	// Receptionists may only manage their own clinic's catalog.
	if !actor.IsAdmin() {
		ownClinic, ok := actor.ClinicID()
		if !ok || ownClinic != clinicID {
			return nil, ErrForbidden
		}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	clinic, err := u.clinicRepo.FindByID(tx, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic: %+v", err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	price := decimal.Zero
	if req.Price != "" {
		price, err = decimal.NewFromString(req.Price)
		if err != nil {
			return nil, ErrInvalidAmount
		}
	}

	duration := req.Duration
	if duration <= 0 {
		duration = entity.DefaultAppointmentDuration
	}

	svc := &entity.Service{
		ClinicID:    clinicID,
		Name:        req.Name,
		ServiceType: entity.ServiceType(req.ServiceType),
		Description: req.Description,
		Duration:    duration,
		Price:       price,
		IsActive:    true,
	}

	if err := u.serviceRepo.Create(tx, svc); err != nil {
		if isDuplicateKeyError(err, "clinic_name") {
			return nil, ErrServiceNameTaken
		}
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionServiceCreate,
		"service", svc.ID.String(), entity.JSON{"name": svc.Name, "clinic_id": clinicID.String()}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ServiceToResponse(svc), nil
}

func (u *serviceUsecase) List(ctx context.Context, actorID uuid.UUID) ([]dto.ServiceResponse, error) {
	actor, err := u.actorResolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	if actor.IsAdmin() {
		services, err := u.serviceRepo.FindAll(db)
		if err != nil {
			u.log.Warnf("Failed to list services: %+v", err)
			return nil, err
		}
		return converter.ServicesToResponses(services), nil
	}

	clinicID, ok := actor.ClinicID()
	if !ok {
		return []dto.ServiceResponse{}, nil
	}

	services, err := u.serviceRepo.FindByClinicID(db, clinicID)
	if err != nil {
		u.log.Warnf("Failed to list services: %+v", err)
		return nil, err
	}
	return converter.ServicesToResponses(services), nil
}

func (u *serviceUsecase) Get(ctx context.Context, actorID, id uuid.UUID) (*dto.ServiceResponse, error) {
	actor, err := u.actorResolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}

	svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	if !actor.IsAdmin() {
		clinicID, ok := actor.ClinicID()
		if !ok || clinicID != svc.ClinicID {
			return nil, ErrServiceNotFound
		}
	}

	return converter.ServiceToResponse(svc), nil
}

func (u *serviceUsecase) Update(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	actor, err := u.actorResolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	svc, err := u.serviceRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	if !actor.IsAdmin() {
		clinicID, ok := actor.ClinicID()
		if !ok || clinicID != svc.ClinicID {
			return nil, ErrForbidden
		}
	}

	if req.Name != "" {
		svc.Name = req.Name
	}
	if req.ServiceType != "" {
		svc.ServiceType = entity.ServiceType(req.ServiceType)
	}
	if req.Description != "" {
		svc.Description = req.Description
	}
	if req.Duration > 0 {
		svc.Duration = req.Duration
	}
	if req.Price != "" {
		price, err := decimal.NewFromString(req.Price)
		if err != nil {
			return nil, ErrInvalidAmount
		}
		svc.Price = price
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := u.serviceRepo.Update(tx, svc); err != nil {
		if isDuplicateKeyError(err, "clinic_name") {
			return nil, ErrServiceNameTaken
		}
		u.log.Warnf("Failed to update service: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionServiceUpdate,
		"service", svc.ID.String(), nil, entity.JSON{"name": svc.Name}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ServiceToResponse(svc), nil
}

func (u *serviceUsecase) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	actor, err := u.actorResolver.Resolve(ctx, actorID)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	svc, err := u.serviceRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return err
	}
	if svc == nil {
		return ErrServiceNotFound
	}

	if !actor.IsAdmin() {
		clinicID, ok := actor.ClinicID()
		if !ok || clinicID != svc.ClinicID {
			return ErrForbidden
		}
	}

	if err := u.serviceRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete service: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionServiceDelete,
		"service", id.String(), entity.JSON{"name": svc.Name}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
