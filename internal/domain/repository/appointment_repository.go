package repository

import (
	"time"

	"medflow-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindActiveByDoctorForUpdate loads the doctor's active appointments with
	// a FOR UPDATE lock so concurrent conflict checks for the same doctor
	// serialize. Must run inside a transaction. excludeID skips the
	// appointment being updated; pass uuid.Nil on create.
	FindActiveByDoctorForUpdate(db *gorm.DB, doctorID, excludeID uuid.UUID) ([]entity.Appointment, error)
	FindActiveByDoctorOnDate(db *gorm.DB, doctorID uuid.UUID, dayStart, dayEnd time.Time) ([]entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	FindByClinicID(db *gorm.DB, clinicID uuid.UUID) ([]entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error
}
