package converter

import (
	"medflow-server/internal/delivery/dto"
	"medflow-server/internal/domain/entity"

	"github.com/google/uuid"
)

// ReceptionistToResponse converts a Receptionist entity to ReceptionistResponse DTO
func ReceptionistToResponse(receptionist *entity.Receptionist) *dto.ReceptionistResponse {
	if receptionist == nil {
		return nil
	}

	response := &dto.ReceptionistResponse{
		ID:           receptionist.ID,
		UserID:       receptionist.UserID,
		ClinicID:     receptionist.ClinicID,
		EmployeeCode: receptionist.EmployeeCode,
		ShiftStart:   receptionist.ShiftStart,
		ShiftEnd:     receptionist.ShiftEnd,
		WorkingDays:  receptionist.WorkingDays,
		Services:     ServicesToResponses(receptionist.Services),
		IsActive:     receptionist.IsActive,
		CreatedAt:    receptionist.CreatedAt,
		UpdatedAt:    receptionist.UpdatedAt,
	}

	if receptionist.User.ID != uuid.Nil {
		response.FullName = receptionist.User.FullName()
		response.Email = receptionist.User.Email
	}

	return response
}

// ReceptionistsToResponses converts a slice of Receptionist entities to slice of ReceptionistResponse DTOs
func ReceptionistsToResponses(receptionists []entity.Receptionist) []dto.ReceptionistResponse {
	responses := make([]dto.ReceptionistResponse, len(receptionists))
	for i := range receptionists {
		resp := ReceptionistToResponse(&receptionists[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
