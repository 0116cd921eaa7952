package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table
type User struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID      int        `gorm:"not null;index" json:"role_id"`
	Email       string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"type:text;not null" json:"-"`
	FirstName   string     `gorm:"type:varchar(150);not null" json:"first_name"`
	LastName    string     `gorm:"type:varchar(150);not null" json:"last_name"`
	PhoneNumber string     `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Address     string     `gorm:"type:text" json:"address,omitempty"`
	IsActive    bool       `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role                Role          `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	DoctorProfile       *Doctor       `gorm:"foreignKey:UserID" json:"doctor_profile,omitempty"`
	ReceptionistProfile *Receptionist `gorm:"foreignKey:UserID" json:"receptionist_profile,omitempty"`
	PatientProfile      *Patient      `gorm:"foreignKey:UserID" json:"patient_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// FullName joins the name parts the way the UI displays them.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

func (u *User) IsAdmin() bool        { return u.RoleID == RoleIDAdmin }
func (u *User) IsDoctor() bool       { return u.RoleID == RoleIDDoctor }
func (u *User) IsReceptionist() bool { return u.RoleID == RoleIDReceptionist }
func (u *User) IsPatient() bool      { return u.RoleID == RoleIDPatient }
