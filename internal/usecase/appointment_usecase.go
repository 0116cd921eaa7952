package usecase

import (
	"context"
	"time"

	"medflow-server/config"
	"medflow-server/internal/converter"
	"medflow-server/internal/delivery/dto"
	"medflow-server/internal/domain/entity"
	"medflow-server/internal/domain/repository"
	"medflow-server/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AppointmentUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	List(ctx context.Context, actorID uuid.UUID) ([]dto.AppointmentResponse, error)
	Get(ctx context.Context, actorID, id uuid.UUID) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Confirm(ctx context.Context, actorID, id uuid.UUID) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, actorID, id uuid.UUID) (*dto.AppointmentResponse, error)
	AvailableSlots(ctx context.Context, doctorID uuid.UUID, date string, serviceID uuid.UUID) (*dto.AvailableSlotsResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	scheduling      config.SchedulingConfig
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	serviceRepo     repository.ServiceRepository
	actorResolver   *ActorResolver
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduling config.SchedulingConfig,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	serviceRepo repository.ServiceRepository,
	actorResolver *ActorResolver,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		scheduling:      scheduling,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		serviceRepo:     serviceRepo,
		actorResolver:   actorResolver,
		auditService:    auditService,
	}
}

// Create books an appointment. The conflict check runs inside the same
// transaction as the insert, with the doctor's active appointments locked,
// so two concurrent bookings for one doctor serialize instead of racing.
func (u *appointmentUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	actor, err := u.actorResolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}

	appointmentDate, err := time.Parse(time.RFC3339, req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateTime
	}
	if !appointmentDate.After(time.Now()) {
		return nil, ErrPastAppointment
	}

	doctorID, err := parseUUID(req.DoctorID)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if !doctor.AcceptsAppointments() {
		return nil, ErrDoctorUnavailable
	}

	patient, err := u.resolvePatient(tx, actor, req.PatientID)
	if err != nil {
		return nil, err
	}

	svc, serviceID, err := u.resolveService(tx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	duration := ResolveDuration(svc, req.Duration)
	end := appointmentDate.Add(time.Duration(duration) * time.Minute)

	existing, err := u.appointmentRepo.FindActiveByDoctorForUpdate(tx, doctorID, uuid.Nil)
	if err != nil {
		u.log.Warnf("Failed to lock doctor's appointments: %+v", err)
		return nil, err
	}
	if conflict := FindConflict(appointmentDate, end, existing); conflict != nil {
		return nil, &ConflictError{Start: conflict.AppointmentDate, End: conflict.End()}
	}

	appointment := &entity.Appointment{
		PatientID:       patient.ID,
		DoctorID:        doctorID,
		ClinicID:        doctor.ClinicID,
		ServiceID:       serviceID,
		AppointmentDate: appointmentDate,
		Duration:        duration,
		Status:          entity.AppointmentStatusScheduled,
		Reason:          req.Reason,
		Notes:           req.Notes,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionAppointmentCreate,
		"appointment", appointment.ID.String(), entity.JSON{
			"doctor_id":        doctorID.String(),
			"patient_id":       patient.ID.String(),
			"appointment_date": appointmentDate.Format(time.RFC3339),
		}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Patient = *patient
	appointment.Doctor = *doctor
	appointment.Service = svc
	return converter.AppointmentToResponse(appointment), nil
}

// resolvePatient decides whose appointment this is. A patient always books
// for themselves; staff must name the patient.
func (u *appointmentUsecase) resolvePatient(tx *gorm.DB, actor *Actor, rawPatientID string) (*entity.Patient, error) {
	if actor.IsPatient() {
		if actor.Patient == nil {
			return nil, ErrPatientNotFound
		}
		return actor.Patient, nil
	}

	patientID, err := parseOptionalUUID(rawPatientID)
	if err != nil {
		return nil, err
	}
	if patientID == uuid.Nil {
		return nil, ErrPatientNotFound
	}

	patient, err := u.patientRepo.FindByID(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}

func (u *appointmentUsecase) resolveService(tx *gorm.DB, rawServiceID string) (*entity.Service, *uuid.UUID, error) {
	serviceID, err := parseOptionalUUID(rawServiceID)
	if err != nil {
		return nil, nil, err
	}
	if serviceID == uuid.Nil {
		return nil, nil, nil
	}

	svc, err := u.serviceRepo.FindByID(tx, serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return nil, nil, err
	}
	if svc == nil {
		return nil, nil, ErrServiceNotFound
	}
	return svc, &serviceID, nil
}

func (u *appointmentUsecase) List(ctx context.Context, actorID uuid.UUID) ([]dto.AppointmentResponse, error) {
	actor, err := u.actorResolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)
	var appointments []entity.Appointment

	switch {
	case actor.IsAdmin():
		appointments, err = u.appointmentRepo.FindAll(db)
	case actor.IsDoctor():
		if actor.Doctor == nil {
			return []dto.AppointmentResponse{}, nil
		}
		appointments, err = u.appointmentRepo.FindByDoctorID(db, actor.Doctor.ID)
	case actor.IsReceptionist():
		if actor.Receptionist == nil {
			return []dto.AppointmentResponse{}, nil
		}
		appointments, err = u.appointmentRepo.FindByClinicID(db, actor.Receptionist.ClinicID)
	default:
		if actor.Patient == nil {
			return []dto.AppointmentResponse{}, nil
		}
		appointments, err = u.appointmentRepo.FindByPatientID(db, actor.Patient.ID)
	}
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) Get(ctx context.Context, actorID, id uuid.UUID) (*dto.AppointmentResponse, error) {
	actor, err := u.actorResolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil || !u.canView(actor, appointment) {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) canView(actor *Actor, appointment *entity.Appointment) bool {
	switch {
	case actor.IsAdmin():
		return true
	case actor.IsDoctor():
		return actor.Doctor != nil && actor.Doctor.ID == appointment.DoctorID
	case actor.IsReceptionist():
		return actor.Receptionist != nil && actor.Receptionist.ClinicID == appointment.ClinicID
	default:
		return actor.Patient != nil && actor.Patient.ID == appointment.PatientID
	}
}

// Update reschedules or amends an appointment. Duration resolves exactly as
// on create: the target service's duration wins, else the client value, else
// the default. The conflict check excludes the appointment itself.
func (u *appointmentUsecase) Update(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	actor, err := u.actorResolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil || !u.canView(actor, appointment) {
		return nil, ErrAppointmentNotFound
	}

	doctorID := appointment.DoctorID
	if req.DoctorID != "" {
		doctorID, err = parseUUID(req.DoctorID)
		if err != nil {
			return nil, err
		}
	}

	doctor, err := u.doctorRepo.FindByID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if doctorID != appointment.DoctorID && !doctor.AcceptsAppointments() {
		return nil, ErrDoctorUnavailable
	}

	appointmentDate := appointment.AppointmentDate
	if req.AppointmentDate != "" {
		appointmentDate, err = time.Parse(time.RFC3339, req.AppointmentDate)
		if err != nil {
			return nil, ErrInvalidDateTime
		}
		if !appointmentDate.After(time.Now()) {
			return nil, ErrPastAppointment
		}
	}

	// Duration resolves against the target service, falling back to the
	// current one when the service is unchanged.
	var svc *entity.Service
	serviceID := appointment.ServiceID
	if req.ServiceID != "" {
		svc, serviceID, err = u.resolveService(tx, req.ServiceID)
		if err != nil {
			return nil, err
		}
	} else if serviceID != nil {
		svc, err = u.serviceRepo.FindByID(tx, *serviceID)
		if err != nil {
			u.log.Warnf("Failed to find service: %+v", err)
			return nil, err
		}
	}

	requested := req.Duration
	if requested == 0 {
		requested = appointment.Duration
	}
	duration := ResolveDuration(svc, requested)
	end := appointmentDate.Add(time.Duration(duration) * time.Minute)

	existing, err := u.appointmentRepo.FindActiveByDoctorForUpdate(tx, doctorID, appointment.ID)
	if err != nil {
		u.log.Warnf("Failed to lock doctor's appointments: %+v", err)
		return nil, err
	}
	if conflict := FindConflict(appointmentDate, end, existing); conflict != nil {
		return nil, &ConflictError{Start: conflict.AppointmentDate, End: conflict.End()}
	}

	appointment.DoctorID = doctorID
	appointment.ClinicID = doctor.ClinicID
	appointment.ServiceID = serviceID
	appointment.AppointmentDate = appointmentDate
	appointment.Duration = duration
	if req.Reason != "" {
		appointment.Reason = req.Reason
	}
	if req.Notes != "" {
		appointment.Notes = req.Notes
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionAppointmentUpdate,
		"appointment", appointment.ID.String(), nil, entity.JSON{
			"appointment_date": appointmentDate.Format(time.RFC3339),
			"duration":         duration,
		}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Doctor = *doctor
	appointment.Service = svc
	return converter.AppointmentToResponse(appointment), nil
}

// Confirm moves a scheduled appointment to confirmed. Patients cannot
// confirm their own bookings.
func (u *appointmentUsecase) Confirm(ctx context.Context, actorID, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, actorID, id, entity.AuditActionAppointmentConfirm,
		func(actor *Actor, appointment *entity.Appointment) error {
			if actor.IsPatient() {
				return ErrForbidden
			}
			if appointment.Status != entity.AppointmentStatusScheduled {
				return ErrStatusTransition
			}
			appointment.Confirm()
			return nil
		})
}

// Cancel is allowed for staff and for the owning patient, while the
// appointment still occupies the doctor's time.
func (u *appointmentUsecase) Cancel(ctx context.Context, actorID, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, actorID, id, entity.AuditActionAppointmentCancel,
		func(actor *Actor, appointment *entity.Appointment) error {
			if actor.IsPatient() && (actor.Patient == nil || actor.Patient.ID != appointment.PatientID) {
				return ErrForbidden
			}
			if !appointment.IsActive() {
				return ErrStatusTransition
			}
			appointment.Cancel()
			return nil
		})
}

func (u *appointmentUsecase) transition(
	ctx context.Context,
	actorID, id uuid.UUID,
	auditAction string,
	apply func(*Actor, *entity.Appointment) error,
) (*dto.AppointmentResponse, error) {
	actor, err := u.actorResolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil || !u.canView(actor, appointment) {
		return nil, ErrAppointmentNotFound
	}

	if err := apply(actor, appointment); err != nil {
		return nil, err
	}

	if err := u.appointmentRepo.UpdateStatus(tx, appointment.ID, appointment.Status); err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, tx, &actorID, auditAction, entity.JSON{
		"entity":    "appointment",
		"entity_id": appointment.ID.String(),
		"status":    string(appointment.Status),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// AvailableSlots runs the availability engine for one doctor-day. A doctor
// who is flagged unavailable or inactive yields an empty list, not an error.
func (u *appointmentUsecase) AvailableSlots(ctx context.Context, doctorID uuid.UUID, date string, serviceID uuid.UUID) (*dto.AvailableSlotsResponse, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	// An unknown service id falls back to the default duration instead of
	// failing the whole slot query.
	var svc *entity.Service
	if serviceID != uuid.Nil {
		svc, err = u.serviceRepo.FindByID(db, serviceID)
		if err != nil {
			u.log.Warnf("Failed to find service: %+v", err)
			return nil, err
		}
	}
	duration := ResolveDuration(svc, 0)

	response := &dto.AvailableSlotsResponse{
		DoctorID:       doctorID,
		Date:           date,
		Duration:       duration,
		AvailableSlots: []dto.SlotResponse{},
	}

	if !doctor.AcceptsAppointments() {
		return response, nil
	}

	dayStart, dayEnd := DayBounds(day)
	busy, err := u.appointmentRepo.FindActiveByDoctorOnDate(db, doctorID, dayStart, dayEnd)
	if err != nil {
		u.log.Warnf("Failed to load appointments: %+v", err)
		return nil, err
	}

	startClock, endClock := ResolveWorkingHours(doctor.AvailableHours,
		u.scheduling.DefaultWorkStart, u.scheduling.DefaultWorkEnd)

	response.AvailableSlots = converter.SlotsToResponses(BuildAvailableSlots(day, startClock, endClock,
		u.scheduling.SlotInterval, duration, busy, time.Now()))

	return response, nil
}
