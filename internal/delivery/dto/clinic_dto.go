package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateClinicRequest struct {
	Name         string                 `json:"name" validate:"required,min=2,max=200"`
	Address      string                 `json:"address" validate:"required"`
	City         string                 `json:"city" validate:"required,max=100"`
	PostalCode   string                 `json:"postal_code" validate:"omitempty,max=20"`
	Country      string                 `json:"country" validate:"omitempty,max=100"`
	PhoneNumber  string                 `json:"phone_number" validate:"omitempty,min=7,max=20"`
	Email        string                 `json:"email" validate:"omitempty,email"`
	Website      string                 `json:"website" validate:"omitempty,max=255"`
	Description  string                 `json:"description" validate:"omitempty"`
	OpeningHours map[string]interface{} `json:"opening_hours" validate:"omitempty"`
}

type UpdateClinicRequest struct {
	Name         string                 `json:"name" validate:"omitempty,min=2,max=200"`
	Address      string                 `json:"address" validate:"omitempty"`
	City         string                 `json:"city" validate:"omitempty,max=100"`
	PostalCode   string                 `json:"postal_code" validate:"omitempty,max=20"`
	Country      string                 `json:"country" validate:"omitempty,max=100"`
	PhoneNumber  string                 `json:"phone_number" validate:"omitempty,min=7,max=20"`
	Email        string                 `json:"email" validate:"omitempty,email"`
	Website      string                 `json:"website" validate:"omitempty,max=255"`
	Description  string                 `json:"description" validate:"omitempty"`
	OpeningHours map[string]interface{} `json:"opening_hours" validate:"omitempty"`
	IsActive     *bool                  `json:"is_active" validate:"omitempty"`
}

type ClinicResponse struct {
	ID           uuid.UUID              `json:"id"`
	Name         string                 `json:"name"`
	Address      string                 `json:"address"`
	City         string                 `json:"city"`
	PostalCode   string                 `json:"postal_code,omitempty"`
	Country      string                 `json:"country,omitempty"`
	PhoneNumber  string                 `json:"phone_number,omitempty"`
	Email        string                 `json:"email,omitempty"`
	Website      string                 `json:"website,omitempty"`
	Description  string                 `json:"description,omitempty"`
	OpeningHours map[string]interface{} `json:"opening_hours,omitempty"`
	IsActive     bool                   `json:"is_active"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}
