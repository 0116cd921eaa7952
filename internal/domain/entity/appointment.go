package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed  AppointmentStatus = "confirmed"
	AppointmentStatusInProgress AppointmentStatus = "in_progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"
	AppointmentStatusNoShow     AppointmentStatus = "no_show"
)

// ActiveAppointmentStatuses are the statuses that occupy a doctor's time.
// Only these participate in overlap checks and slot blocking.
var ActiveAppointmentStatuses = []AppointmentStatus{
	AppointmentStatusScheduled,
	AppointmentStatusConfirmed,
	AppointmentStatusInProgress,
}

// ValidAppointmentStatus reports whether s is one of the known statuses.
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusInProgress,
		AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow:
		return true
	}
	return false
}

// Appointment represents a booked visit. The time it occupies is the
// half-open interval [AppointmentDate, AppointmentDate+Duration minutes).
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointments_patient_date" json:"patient_id"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointments_doctor_date" json:"doctor_id"`
	ClinicID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"clinic_id"`
	ServiceID       *uuid.UUID        `gorm:"type:uuid;index" json:"service_id,omitempty"`
	AppointmentDate time.Time         `gorm:"not null;index;index:idx_appointments_patient_date;index:idx_appointments_doctor_date" json:"appointment_date"`
	Duration        int               `gorm:"not null;default:30" json:"duration"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Reason          string            `gorm:"type:text" json:"reason,omitempty"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	ReminderSent    bool              `gorm:"not null;default:false" json:"reminder_sent"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient  `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Clinic  Clinic   `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// End returns the exclusive end of the occupied interval.
func (a *Appointment) End() time.Time {
	return a.AppointmentDate.Add(time.Duration(a.Duration) * time.Minute)
}

// IsActive reports whether the appointment still occupies the doctor's time.
func (a *Appointment) IsActive() bool {
	for _, s := range ActiveAppointmentStatuses {
		if a.Status == s {
			return true
		}
	}
	return false
}

// Confirm changes appointment status to confirmed
func (a *Appointment) Confirm() {
	a.Status = AppointmentStatusConfirmed
}

// Cancel changes appointment status to cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}
