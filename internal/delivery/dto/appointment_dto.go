package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	PatientID       string `json:"patient_id" validate:"omitempty,uuid"`
	DoctorID        string `json:"doctor_id" validate:"required,uuid"`
	ServiceID       string `json:"service_id" validate:"omitempty,uuid"`
	AppointmentDate string `json:"appointment_date" validate:"required"` // RFC 3339
	Duration        int    `json:"duration" validate:"omitempty,gte=5,lte=480"`
	Reason          string `json:"reason" validate:"omitempty"`
	Notes           string `json:"notes" validate:"omitempty"`
}

type UpdateAppointmentRequest struct {
	DoctorID        string `json:"doctor_id" validate:"omitempty,uuid"`
	ServiceID       string `json:"service_id" validate:"omitempty,uuid"`
	AppointmentDate string `json:"appointment_date" validate:"omitempty"`
	Duration        int    `json:"duration" validate:"omitempty,gte=5,lte=480"`
	Reason          string `json:"reason" validate:"omitempty"`
	Notes           string `json:"notes" validate:"omitempty"`
}

type AppointmentResponse struct {
	ID              uuid.UUID        `json:"id"`
	PatientID       uuid.UUID        `json:"patient_id"`
	PatientName     string           `json:"patient_name,omitempty"`
	DoctorID        uuid.UUID        `json:"doctor_id"`
	DoctorName      string           `json:"doctor_name,omitempty"`
	ClinicID        uuid.UUID        `json:"clinic_id"`
	ServiceID       *uuid.UUID       `json:"service_id,omitempty"`
	Service         *ServiceResponse `json:"service,omitempty"`
	AppointmentDate time.Time        `json:"appointment_date"`
	EndTime         time.Time        `json:"end_time"`
	Duration        int              `json:"duration"`
	Status          string           `json:"status"`
	Reason          string           `json:"reason,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type SlotResponse struct {
	StartTime string `json:"start_time"`
	Available bool   `json:"available"`
}

type AvailableSlotsResponse struct {
	DoctorID       uuid.UUID      `json:"doctor_id"`
	Date           string         `json:"date"`
	Duration       int            `json:"duration"`
	AvailableSlots []SlotResponse `json:"available_slots"`
}
