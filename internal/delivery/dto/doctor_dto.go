package dto

import (
	"time"

	"github.com/google/uuid"
)

type DoctorResponse struct {
	ID                uuid.UUID              `json:"id"`
	UserID            uuid.UUID              `json:"user_id"`
	ClinicID          uuid.UUID              `json:"clinic_id"`
	DoctorCode        string                 `json:"doctor_code"`
	FullName          string                 `json:"full_name,omitempty"`
	Email             string                 `json:"email,omitempty"`
	Specialization    string                 `json:"specialization"`
	LicenseNumber     string                 `json:"license_number"`
	YearsOfExperience int                    `json:"years_of_experience"`
	Education         string                 `json:"education,omitempty"`
	Certifications    string                 `json:"certifications,omitempty"`
	ConsultationFee   string                 `json:"consultation_fee"`
	AvailableDays     []string               `json:"available_days,omitempty"`
	AvailableHours    map[string]interface{} `json:"available_hours,omitempty"`
	IsAvailable       bool                   `json:"is_available"`
	IsActive          bool                   `json:"is_active"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}
