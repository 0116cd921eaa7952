package repository

import (
	"errors"
	"time"

	"medflow-server/internal/domain/entity"
	domainRepo "medflow-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Patient.User").Preload("Doctor.User").
		Preload("Clinic").Preload("Service").
		Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindActiveByDoctorForUpdate(db *gorm.DB, doctorID, excludeID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("doctor_id = ? AND status IN ?", doctorID, entity.ActiveAppointmentStatuses)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindActiveByDoctorOnDate(db *gorm.DB, doctorID uuid.UUID, dayStart, dayEnd time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("doctor_id = ? AND status IN ? AND appointment_date >= ? AND appointment_date < ?",
		doctorID, entity.ActiveAppointmentStatuses, dayStart, dayEnd).
		Order("appointment_date ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient.User").Preload("Doctor.User").Preload("Service").
		Where("patient_id = ?", patientID).
		Order("appointment_date DESC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient.User").Preload("Doctor.User").Preload("Service").
		Where("doctor_id = ?", doctorID).
		Order("appointment_date DESC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByClinicID(db *gorm.DB, clinicID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient.User").Preload("Doctor.User").Preload("Service").
		Where("clinic_id = ?", clinicID).
		Order("appointment_date DESC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient.User").Preload("Doctor.User").Preload("Service").
		Order("appointment_date DESC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Save(appointment).Error
}

func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error {
	return db.Model(&entity.Appointment{}).Where("id = ?", id).
		Update("status", status).Error
}
