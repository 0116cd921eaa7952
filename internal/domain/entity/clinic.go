package entity

import (
	"time"

	"github.com/google/uuid"
)

// Clinic is the tenancy boundary: profiles, services, appointments and
// conversations all hang off one clinic.
type Clinic struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"type:varchar(200);not null" json:"name"`
	Address      string    `gorm:"type:text;not null" json:"address"`
	City         string    `gorm:"type:varchar(100)" json:"city,omitempty"`
	PostalCode   string    `gorm:"type:varchar(20)" json:"postal_code,omitempty"`
	Country      string    `gorm:"type:varchar(100)" json:"country,omitempty"`
	PhoneNumber  string    `gorm:"type:varchar(20);not null" json:"phone_number"`
	Email        string    `gorm:"type:varchar(255);not null" json:"email"`
	Website      string    `gorm:"type:varchar(255)" json:"website,omitempty"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	OpeningHours JSON      `gorm:"type:jsonb" json:"opening_hours,omitempty"`
	IsActive     bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctors       []Doctor       `gorm:"foreignKey:ClinicID" json:"doctors,omitempty"`
	Patients      []Patient      `gorm:"foreignKey:ClinicID" json:"patients,omitempty"`
	Receptionists []Receptionist `gorm:"foreignKey:ClinicID" json:"receptionists,omitempty"`
	Services      []Service      `gorm:"foreignKey:ClinicID" json:"services,omitempty"`
}

func (Clinic) TableName() string {
	return "clinics"
}
