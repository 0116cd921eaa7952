package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceType classifies the kind of visit a service books
type ServiceType string

const (
	ServiceTypeConsultation ServiceType = "consultation"
	ServiceTypeCheckup      ServiceType = "checkup"
	ServiceTypeSurgery      ServiceType = "surgery"
	ServiceTypeTherapy      ServiceType = "therapy"
	ServiceTypeVaccination  ServiceType = "vaccination"
	ServiceTypeDental       ServiceType = "dental"
	ServiceTypeOther        ServiceType = "other"
)

// DefaultAppointmentDuration is used when neither the service nor the client
// supplies a duration, in minutes.
const DefaultAppointmentDuration = 30

// Service represents a bookable appointment type offered by a clinic
type Service struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClinicID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_services_clinic_name,unique" json:"clinic_id"`
	Name        string          `gorm:"type:varchar(100);not null;index:idx_services_clinic_name,unique" json:"name"`
	ServiceType ServiceType     `gorm:"type:varchar(20);not null;default:'consultation'" json:"service_type"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Duration    int             `gorm:"not null;default:30" json:"duration"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	IsActive    bool            `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Clinic Clinic `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
}

func (Service) TableName() string {
	return "services"
}
