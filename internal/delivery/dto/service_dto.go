package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateServiceRequest struct {
	ClinicID    string `json:"clinic_id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required,min=2,max=100"`
	ServiceType string `json:"service_type" validate:"required,oneof=consultation checkup surgery therapy vaccination dental other"`
	Description string `json:"description" validate:"omitempty"`
	Duration    int    `json:"duration" validate:"omitempty,gte=5,lte=480"`
	Price       string `json:"price" validate:"omitempty"`
}

type UpdateServiceRequest struct {
	Name        string `json:"name" validate:"omitempty,min=2,max=100"`
	ServiceType string `json:"service_type" validate:"omitempty,oneof=consultation checkup surgery therapy vaccination dental other"`
	Description string `json:"description" validate:"omitempty"`
	Duration    int    `json:"duration" validate:"omitempty,gte=5,lte=480"`
	Price       string `json:"price" validate:"omitempty"`
	IsActive    *bool  `json:"is_active" validate:"omitempty"`
}

type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	ClinicID    uuid.UUID `json:"clinic_id"`
	Name        string    `json:"name"`
	ServiceType string    `json:"service_type"`
	Description string    `json:"description,omitempty"`
	Duration    int       `json:"duration"`
	Price       string    `json:"price"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
