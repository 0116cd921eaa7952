package dto

import (
	"time"

	"github.com/google/uuid"
)

type ReceptionistResponse struct {
	ID           uuid.UUID         `json:"id"`
	UserID       uuid.UUID         `json:"user_id"`
	ClinicID     uuid.UUID         `json:"clinic_id"`
	EmployeeCode string            `json:"employee_code"`
	FullName     string            `json:"full_name,omitempty"`
	Email        string            `json:"email,omitempty"`
	ShiftStart   string            `json:"shift_start"`
	ShiftEnd     string            `json:"shift_end"`
	WorkingDays  []string          `json:"working_days,omitempty"`
	Services     []ServiceResponse `json:"services,omitempty"`
	IsActive     bool              `json:"is_active"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
