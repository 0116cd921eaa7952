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

type PatientUsecase interface {
	List(ctx context.Context, actorID uuid.UUID) ([]dto.PatientResponse, error)
	Get(ctx context.Context, actorID, id uuid.UUID) (*dto.PatientResponse, error)
	MyProfile(ctx context.Context, actorID uuid.UUID) (*dto.PatientResponse, error)
	MedicalHistory(ctx context.Context, actorID, id uuid.UUID) (*dto.MedicalHistoryResponse, error)
	UpdateMedicalInfo(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateMedicalInfoRequest) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	actorResolver   *ActorResolver
	auditService    service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	actorResolver *ActorResolver,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		actorResolver:   actorResolver,
		auditService:    auditService,
	}
}

func (u *patientUsecase) List(ctx context.Context, actorID uuid.UUID) ([]dto.PatientResponse, error) {
	actor, err := u.actorResolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	switch {
	case actor.IsAdmin():
		patients, err := u.patientRepo.FindAll(db)
		if err != nil {
			u.log.Warnf("Failed to list patients: %+v", err)
			return nil, err
		}
		return converter.PatientsToResponses(patients), nil

	case actor.IsDoctor(), actor.IsReceptionist():
		clinicID, ok := actor.ClinicID()
		if !ok {
			return []dto.PatientResponse{}, nil
		}
		patients, err := u.patientRepo.FindByClinicID(db, clinicID)
		if err != nil {
			u.log.Warnf("Failed to list patients: %+v", err)
			return nil, err
		}
		return converter.PatientsToResponses(patients), nil

	default:
		// A patient only ever sees their own row.
		if actor.Patient == nil {
			return []dto.PatientResponse{}, nil
		}
		return []dto.PatientResponse{*converter.PatientToResponse(actor.Patient)}, nil
	}
}

func (u *patientUsecase) Get(ctx context.Context, actorID, id uuid.UUID) (*dto.PatientResponse, error) {
	actor, err := u.actorResolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}

	patient, err := u.loadVisible(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) MyProfile(ctx context.Context, actorID uuid.UUID) (*dto.PatientResponse, error) {
	actor, err := u.actorResolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(actor.Patient), nil
}

func (u *patientUsecase) MedicalHistory(ctx context.Context, actorID, id uuid.UUID) (*dto.MedicalHistoryResponse, error) {
	actor, err := u.actorResolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}

	patient, err := u.loadVisible(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patient.ID)
	if err != nil {
		u.log.Warnf("Failed to load appointments: %+v", err)
		return nil, err
	}

	return &dto.MedicalHistoryResponse{
		PatientID:          patient.ID,
		PatientCode:        patient.PatientCode,
		MedicalHistory:     patient.MedicalHistory,
		Allergies:          patient.Allergies,
		CurrentMedications: patient.CurrentMedications,
		BloodType:          patient.BloodType,
		Appointments:       converter.AppointmentsToResponses(appointments),
	}, nil
}

func (u *patientUsecase) UpdateMedicalInfo(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateMedicalInfoRequest) (*dto.PatientResponse, error) {
	actor, err := u.actorResolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if !u.canAccess(actor, patient) {
		return nil, ErrForbidden
	}

	if req.BloodType != "" {
		patient.BloodType = req.BloodType
	}
	if req.MedicalHistory != "" {
		patient.MedicalHistory = req.MedicalHistory
	}
	if req.Allergies != "" {
		patient.Allergies = req.Allergies
	}
	if req.CurrentMedications != "" {
		patient.CurrentMedications = req.CurrentMedications
	}
	if req.InsuranceNumber != "" {
		patient.InsuranceNumber = req.InsuranceNumber
	}
	if req.InsuranceProvider != "" {
		patient.InsuranceProvider = req.InsuranceProvider
	}

	if err := u.patientRepo.Update(tx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionPatientUpdate,
		"patient", patient.ID.String(), nil, entity.JSON{"patient_code": patient.PatientCode}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

// loadVisible fetches the patient and applies the actor's visibility rules,
// reporting not-found rather than forbidden for rows outside the actor's scope.
func (u *patientUsecase) loadVisible(ctx context.Context, actor *Actor, id uuid.UUID) (*entity.Patient, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil || !u.canAccess(actor, patient) {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}

func (u *patientUsecase) canAccess(actor *Actor, patient *entity.Patient) bool {
	if actor.IsAdmin() {
		return true
	}
	if actor.IsPatient() {
		return actor.Patient != nil && actor.Patient.ID == patient.ID
	}
	clinicID, ok := actor.ClinicID()
	return ok && clinicID == patient.ClinicID
}
