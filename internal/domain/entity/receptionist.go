package entity

import (
	"time"

	"github.com/google/uuid"
)

// Receptionist represents front-desk staff bound to one clinic
type Receptionist struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID   `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	ClinicID     uuid.UUID   `gorm:"type:uuid;not null;index" json:"clinic_id"`
	EmployeeCode string      `gorm:"type:varchar(20);uniqueIndex;not null" json:"employee_code"`
	ShiftStart   string      `gorm:"type:time;not null" json:"shift_start"`
	ShiftEnd     string      `gorm:"type:time;not null" json:"shift_end"`
	WorkingDays  StringArray `gorm:"type:jsonb" json:"working_days,omitempty"`
	Permissions  JSON        `gorm:"type:jsonb" json:"permissions,omitempty"`
	IsActive     bool        `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Clinic   Clinic    `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
	Services []Service `gorm:"many2many:receptionist_services" json:"services,omitempty"`
}

func (Receptionist) TableName() string {
	return "receptionists"
}
