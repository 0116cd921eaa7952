package converter

import (
	"medflow-server/internal/delivery/dto"
	"medflow-server/internal/domain/entity"
)

// ClinicToResponse converts a Clinic entity to ClinicResponse DTO
func ClinicToResponse(clinic *entity.Clinic) *dto.ClinicResponse {
	if clinic == nil {
		return nil
	}

	return &dto.ClinicResponse{
		ID:           clinic.ID,
		Name:         clinic.Name,
		Address:      clinic.Address,
		City:         clinic.City,
		PostalCode:   clinic.PostalCode,
		Country:      clinic.Country,
		PhoneNumber:  clinic.PhoneNumber,
		Email:        clinic.Email,
		Website:      clinic.Website,
		Description:  clinic.Description,
		OpeningHours: clinic.OpeningHours,
		IsActive:     clinic.IsActive,
		CreatedAt:    clinic.CreatedAt,
		UpdatedAt:    clinic.UpdatedAt,
	}
}

// ClinicsToResponses converts a slice of Clinic entities to slice of ClinicResponse DTOs
func ClinicsToResponses(clinics []entity.Clinic) []dto.ClinicResponse {
	responses := make([]dto.ClinicResponse, len(clinics))
	for i := range clinics {
		resp := ClinicToResponse(&clinics[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
