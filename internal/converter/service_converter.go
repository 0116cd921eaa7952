package converter

import (
	"medflow-server/internal/delivery/dto"
	"medflow-server/internal/domain/entity"
)

// ServiceToResponse converts a Service entity to ServiceResponse DTO
func ServiceToResponse(service *entity.Service) *dto.ServiceResponse {
	if service == nil {
		return nil
	}

	return &dto.ServiceResponse{
		ID:          service.ID,
		ClinicID:    service.ClinicID,
		Name:        service.Name,
		ServiceType: string(service.ServiceType),
		Description: service.Description,
		Duration:    service.Duration,
		Price:       service.Price.StringFixed(2),
		IsActive:    service.IsActive,
		CreatedAt:   service.CreatedAt,
		UpdatedAt:   service.UpdatedAt,
	}
}

// ServicesToResponses converts a slice of Service entities to slice of ServiceResponse DTOs
func ServicesToResponses(services []entity.Service) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, len(services))
	for i := range services {
		resp := ServiceToResponse(&services[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
