package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdateMedicalInfoRequest struct {
	BloodType          string `json:"blood_type" validate:"omitempty,max=5"`
	MedicalHistory     string `json:"medical_history" validate:"omitempty"`
	Allergies          string `json:"allergies" validate:"omitempty"`
	CurrentMedications string `json:"current_medications" validate:"omitempty"`
	InsuranceNumber    string `json:"insurance_number" validate:"omitempty,max=50"`
	InsuranceProvider  string `json:"insurance_provider" validate:"omitempty,max=100"`
}

type PatientResponse struct {
	ID                           uuid.UUID `json:"id"`
	UserID                       uuid.UUID `json:"user_id"`
	ClinicID                     uuid.UUID `json:"clinic_id"`
	PatientCode                  string    `json:"patient_code"`
	FullName                     string    `json:"full_name,omitempty"`
	Email                        string    `json:"email,omitempty"`
	Gender                       string    `json:"gender"`
	BloodType                    string    `json:"blood_type,omitempty"`
	EmergencyContactName         string    `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone        string    `json:"emergency_contact_phone,omitempty"`
	EmergencyContactRelationship string    `json:"emergency_contact_relationship,omitempty"`
	MedicalHistory               string    `json:"medical_history,omitempty"`
	Allergies                    string    `json:"allergies,omitempty"`
	CurrentMedications           string    `json:"current_medications,omitempty"`
	InsuranceNumber              string    `json:"insurance_number,omitempty"`
	InsuranceProvider            string    `json:"insurance_provider,omitempty"`
	IsActive                     bool      `json:"is_active"`
	CreatedAt                    time.Time `json:"created_at"`
	UpdatedAt                    time.Time `json:"updated_at"`
}

type MedicalHistoryResponse struct {
	PatientID          uuid.UUID             `json:"patient_id"`
	PatientCode        string                `json:"patient_code"`
	MedicalHistory     string                `json:"medical_history,omitempty"`
	Allergies          string                `json:"allergies,omitempty"`
	CurrentMedications string                `json:"current_medications,omitempty"`
	BloodType          string                `json:"blood_type,omitempty"`
	Appointments       []AppointmentResponse `json:"appointments"`
}
