package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents patient-specific profile data
type Patient struct {
	ID                           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID                       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	ClinicID                     uuid.UUID `gorm:"type:uuid;not null;index" json:"clinic_id"`
	PatientCode                  string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"patient_code"`
	Gender                       string    `gorm:"type:char(1);not null" json:"gender"`
	BloodType                    string    `gorm:"type:varchar(3)" json:"blood_type,omitempty"`
	EmergencyContactName         string    `gorm:"type:varchar(100);not null" json:"emergency_contact_name"`
	EmergencyContactPhone        string    `gorm:"type:varchar(20);not null" json:"emergency_contact_phone"`
	EmergencyContactRelationship string    `gorm:"type:varchar(50);not null" json:"emergency_contact_relationship"`
	MedicalHistory               string    `gorm:"type:text" json:"medical_history,omitempty"`
	Allergies                    string    `gorm:"type:text" json:"allergies,omitempty"`
	CurrentMedications           string    `gorm:"type:text" json:"current_medications,omitempty"`
	InsuranceNumber              string    `gorm:"type:varchar(50)" json:"insurance_number,omitempty"`
	InsuranceProvider            string    `gorm:"type:varchar(100)" json:"insurance_provider,omitempty"`
	IsActive                     bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt                    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Clinic       Clinic        `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)
