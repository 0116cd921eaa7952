package dto

// Admin user provisioning DTOs. The role decides which profile block is
// required; validation of the per-role blocks happens in the usecase after
// the common fields pass.

type CreateUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FirstName   string `json:"first_name" validate:"required,min=2,max=150"`
	LastName    string `json:"last_name" validate:"required,min=2,max=150"`
	Role        string `json:"role" validate:"required,oneof=admin doctor receptionist patient"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=7,max=20"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"`
	Address     string `json:"address" validate:"omitempty"`

	PatientProfile      *PatientProfileInput      `json:"patient_profile,omitempty"`
	DoctorProfile       *DoctorProfileInput       `json:"doctor_profile,omitempty"`
	ReceptionistProfile *ReceptionistProfileInput `json:"receptionist_profile,omitempty"`
}

type UpdateUserRequest struct {
	FirstName   string `json:"first_name" validate:"omitempty,min=2,max=150"`
	LastName    string `json:"last_name" validate:"omitempty,min=2,max=150"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=7,max=20"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"`
	Address     string `json:"address" validate:"omitempty"`

	PatientProfile      *PatientProfileInput      `json:"patient_profile,omitempty"`
	DoctorProfile       *DoctorProfileInput       `json:"doctor_profile,omitempty"`
	ReceptionistProfile *ReceptionistProfileInput `json:"receptionist_profile,omitempty"`
}

type PatientProfileInput struct {
	ClinicID                     string `json:"clinic_id" validate:"omitempty,uuid"`
	Gender                       string `json:"gender" validate:"omitempty,oneof=M F O"`
	BloodType                    string `json:"blood_type" validate:"omitempty,max=5"`
	EmergencyContactName         string `json:"emergency_contact_name" validate:"omitempty,max=200"`
	EmergencyContactPhone        string `json:"emergency_contact_phone" validate:"omitempty,max=20"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship" validate:"omitempty,max=100"`
	MedicalHistory               string `json:"medical_history" validate:"omitempty"`
	Allergies                    string `json:"allergies" validate:"omitempty"`
	CurrentMedications           string `json:"current_medications" validate:"omitempty"`
	InsuranceNumber              string `json:"insurance_number" validate:"omitempty,max=50"`
	InsuranceProvider            string `json:"insurance_provider" validate:"omitempty,max=100"`
}

type DoctorProfileInput struct {
	ClinicID          string                 `json:"clinic_id" validate:"omitempty,uuid"`
	Specialization    string                 `json:"specialization" validate:"omitempty,max=100"`
	LicenseNumber     string                 `json:"license_number" validate:"omitempty,max=50"`
	YearsOfExperience int                    `json:"years_of_experience" validate:"omitempty,gte=0"`
	Education         string                 `json:"education" validate:"omitempty"`
	Certifications    string                 `json:"certifications" validate:"omitempty"`
	ConsultationFee   string                 `json:"consultation_fee" validate:"omitempty"`
	AvailableDays     []string               `json:"available_days" validate:"omitempty"`
	AvailableHours    map[string]interface{} `json:"available_hours" validate:"omitempty"`
	IsAvailable       *bool                  `json:"is_available" validate:"omitempty"`
}

type ReceptionistProfileInput struct {
	ClinicID    string   `json:"clinic_id" validate:"omitempty,uuid"`
	ShiftStart  string   `json:"shift_start" validate:"omitempty,hhmm"`
	ShiftEnd    string   `json:"shift_end" validate:"omitempty,hhmm"`
	WorkingDays []string `json:"working_days" validate:"omitempty"`
	ServiceIDs  []string `json:"service_ids" validate:"omitempty,dive,uuid"`
}

type ResetPasswordResponse struct {
	TemporaryPassword string `json:"temporary_password"`
}

type ToggleStatusResponse struct {
	ID       string `json:"id"`
	IsActive bool   `json:"is_active"`
}
