package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Doctor represents doctor-specific profile data.
// AvailableHours is a JSONB pair {"start": "09:00", "end": "17:00"}; the
// availability engine silently falls back to the default window when the
// value is absent or malformed.
type Doctor struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID            uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	ClinicID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"clinic_id"`
	DoctorCode        string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"doctor_code"`
	Specialization    string          `gorm:"type:varchar(100);not null;index" json:"specialization"`
	LicenseNumber     string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	YearsOfExperience int             `gorm:"not null;default:0" json:"years_of_experience"`
	Education         string          `gorm:"type:text;not null" json:"education"`
	Certifications    string          `gorm:"type:text" json:"certifications,omitempty"`
	ConsultationFee   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"consultation_fee"`
	AvailableDays     StringArray     `gorm:"type:jsonb" json:"available_days,omitempty"`
	AvailableHours    JSON            `gorm:"type:jsonb" json:"available_hours,omitempty"`
	IsAvailable       bool            `gorm:"not null;default:true" json:"is_available"`
	IsActive          bool            `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Clinic       Clinic        `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// AcceptsAppointments reports whether any slot may be offered for this doctor.
func (d *Doctor) AcceptsAppointments() bool {
	return d.IsAvailable && d.IsActive
}
