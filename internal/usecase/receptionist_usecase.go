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

type ReceptionistUsecase interface {
	List(ctx context.Context, actorID uuid.UUID) ([]dto.ReceptionistResponse, error)
	Get(ctx context.Context, actorID, id uuid.UUID) (*dto.ReceptionistResponse, error)
	Update(ctx context.Context, actorID, id uuid.UUID, req *dto.ReceptionistProfileInput) (*dto.ReceptionistResponse, error)
}

type receptionistUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	receptionistRepo repository.ReceptionistRepository
	serviceRepo      repository.ServiceRepository
	actorResolver    *ActorResolver
	auditService     service.AuditService
}

func NewReceptionistUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	receptionistRepo repository.ReceptionistRepository,
	serviceRepo repository.ServiceRepository,
	actorResolver *ActorResolver,
	auditService service.AuditService,
) ReceptionistUsecase {
	return &receptionistUsecase{
		db:               db,
		log:              log,
		receptionistRepo: receptionistRepo,
		serviceRepo:      serviceRepo,
		actorResolver:    actorResolver,
		auditService:     auditService,
	}
}

func (u *receptionistUsecase) List(ctx context.Context, actorID uuid.UUID) ([]dto.ReceptionistResponse, error) {
	actor, err := u.actorResolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}

	receptionists, err := u.receptionistRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list receptionists: %+v", err)
		return nil, err
	}

	if actor.IsAdmin() {
		return converter.ReceptionistsToResponses(receptionists), nil
	}

	clinicID, ok := actor.ClinicID()
	if !ok {
		return []dto.ReceptionistResponse{}, nil
	}

	scoped := make([]entity.Receptionist, 0, len(receptionists))
	for _, r := range receptionists {
		if r.ClinicID == clinicID {
			scoped = append(scoped, r)
		}
	}
	return converter.ReceptionistsToResponses(scoped), nil
}

func (u *receptionistUsecase) Get(ctx context.Context, actorID, id uuid.UUID) (*dto.ReceptionistResponse, error) {
	actor, err := u.actorResolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}

	receptionist, err := u.receptionistRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find receptionist: %+v", err)
		return nil, err
	}
	if receptionist == nil {
		return nil, ErrReceptionistNotFound
	}

	if !actor.IsAdmin() {
		clinicID, ok := actor.ClinicID()
		if !ok || clinicID != receptionist.ClinicID {
			return nil, ErrReceptionistNotFound
		}
	}

	return converter.ReceptionistToResponse(receptionist), nil
}

// Update lets a receptionist edit their own row and an admin edit any,
// including reassigning managed services.
func (u *receptionistUsecase) Update(ctx context.Context, actorID, id uuid.UUID, req *dto.ReceptionistProfileInput) (*dto.ReceptionistResponse, error) {
	actor, err := u.actorResolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	receptionist, err := u.receptionistRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find receptionist: %+v", err)
		return nil, err
	}
	if receptionist == nil {
		return nil, ErrReceptionistNotFound
	}

	if !actor.IsAdmin() {
		if actor.Receptionist == nil || actor.Receptionist.ID != receptionist.ID {
			return nil, ErrForbidden
		}
	}

	applyReceptionistInput(receptionist, req)

	if err := u.receptionistRepo.Update(tx, receptionist); err != nil {
		u.log.Warnf("Failed to update receptionist: %+v", err)
		return nil, err
	}

	if req.ServiceIDs != nil {
		ids := make([]uuid.UUID, 0, len(req.ServiceIDs))
		for _, raw := range req.ServiceIDs {
			serviceID, err := parseUUID(raw)
			if err != nil {
				return nil, err
			}
			ids = append(ids, serviceID)
		}
		services, err := u.serviceRepo.FindByIDs(tx, ids)
		if err != nil {
			u.log.Warnf("Failed to load services: %+v", err)
			return nil, err
		}
		if err := u.receptionistRepo.ReplaceServices(tx, receptionist, services); err != nil {
			u.log.Warnf("Failed to assign services: %+v", err)
			return nil, err
		}
		receptionist.Services = services
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionReceptionistUpdate,
		"receptionist", receptionist.ID.String(), nil, entity.JSON{"employee_code": receptionist.EmployeeCode}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ReceptionistToResponse(receptionist), nil
}
