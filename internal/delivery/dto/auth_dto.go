package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RegisterRequest is the public self-registration payload. It always creates
// a patient; staff accounts are provisioned by an administrator.
type RegisterRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8"`
	FirstName        string `json:"first_name" validate:"required,min=2,max=150"`
	LastName         string `json:"last_name" validate:"required,min=2,max=150"`
	PhoneNumber      string `json:"phone_number" validate:"omitempty,min=7,max=20"`
	DateOfBirth      string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	Address          string `json:"address" validate:"omitempty"`
	ClinicID         string `json:"clinic_id" validate:"omitempty,uuid"`
	Gender           string `json:"gender" validate:"omitempty,oneof=M F O"`
	BloodType        string `json:"blood_type" validate:"omitempty,max=5"`
	EmergencyContact string `json:"emergency_contact_name" validate:"omitempty,max=200"`
	EmergencyPhone   string `json:"emergency_contact_phone" validate:"omitempty,max=20"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type RegisterResponse struct {
	User   *UserResponse  `json:"user"`
	Tokens *TokenResponse `json:"tokens"`
}

type UserResponse struct {
	ID                  uuid.UUID             `json:"id"`
	Email               string                `json:"email"`
	FirstName           string                `json:"first_name"`
	LastName            string                `json:"last_name"`
	FullName            string                `json:"full_name"`
	Role                string                `json:"role"`
	PhoneNumber         string                `json:"phone_number,omitempty"`
	DateOfBirth         string                `json:"date_of_birth,omitempty"`
	Address             string                `json:"address,omitempty"`
	IsActive            bool                  `json:"is_active"`
	PatientProfile      *PatientResponse      `json:"patient_profile,omitempty"`
	DoctorProfile       *DoctorResponse       `json:"doctor_profile,omitempty"`
	ReceptionistProfile *ReceptionistResponse `json:"receptionist_profile,omitempty"`
	CreatedAt           time.Time             `json:"created_at"`
	UpdatedAt           time.Time             `json:"updated_at"`
}
