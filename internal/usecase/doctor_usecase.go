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

type DoctorUsecase interface {
	List(ctx context.Context, actorID uuid.UUID) ([]dto.DoctorResponse, error)
	Get(ctx context.Context, actorID, id uuid.UUID) (*dto.DoctorResponse, error)
	Update(ctx context.Context, actorID, id uuid.UUID, req *dto.DoctorProfileInput) (*dto.DoctorResponse, error)
}

type doctorUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	doctorRepo    repository.DoctorRepository
	actorResolver *ActorResolver
	auditService  service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	actorResolver *ActorResolver,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:            db,
		log:           log,
		doctorRepo:    doctorRepo,
		actorResolver: actorResolver,
		auditService:  auditService,
	}
}

func (u *doctorUsecase) List(ctx context.Context, actorID uuid.UUID) ([]dto.DoctorResponse, error) {
	actor, err := u.actorResolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	if actor.IsAdmin() {
		doctors, err := u.doctorRepo.FindAll(db)
		if err != nil {
			u.log.Warnf("Failed to list doctors: %+v", err)
			return nil, err
		}
		return converter.DoctorsToResponses(doctors), nil
	}

	clinicID, ok := actor.ClinicID()
	if !ok {
		return []dto.DoctorResponse{}, nil
	}

	doctors, err := u.doctorRepo.FindByClinicID(db, clinicID)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}
	return converter.DoctorsToResponses(doctors), nil
}

func (u *doctorUsecase) Get(ctx context.Context, actorID, id uuid.UUID) (*dto.DoctorResponse, error) {
	actor, err := u.actorResolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}

	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if !actor.IsAdmin() {
		clinicID, ok := actor.ClinicID()
		if !ok || clinicID != doctor.ClinicID {
			return nil, ErrDoctorNotFound
		}
	}

	return converter.DoctorToResponse(doctor), nil
}

// Update lets a doctor edit their own profile and an admin edit any.
func (u *doctorUsecase) Update(ctx context.Context, actorID, id uuid.UUID, req *dto.DoctorProfileInput) (*dto.DoctorResponse, error) {
	actor, err := u.actorResolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if !actor.IsAdmin() {
		if actor.Doctor == nil || actor.Doctor.ID != doctor.ID {
			return nil, ErrForbidden
		}
	}

	if err := applyDoctorInput(doctor, req); err != nil {
		return nil, err
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrLicenseAlreadyExists
		}
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionDoctorUpdate,
		"doctor", doctor.ID.String(), nil, entity.JSON{"doctor_code": doctor.DoctorCode}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}
