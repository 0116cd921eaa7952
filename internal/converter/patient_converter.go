package converter

import (
	"medflow-server/internal/delivery/dto"
	"medflow-server/internal/domain/entity"

	"github.com/google/uuid"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:                           patient.ID,
		UserID:                       patient.UserID,
		ClinicID:                     patient.ClinicID,
		PatientCode:                  patient.PatientCode,
		Gender:                       patient.Gender,
		BloodType:                    patient.BloodType,
		EmergencyContactName:         patient.EmergencyContactName,
		EmergencyContactPhone:        patient.EmergencyContactPhone,
		EmergencyContactRelationship: patient.EmergencyContactRelationship,
		MedicalHistory:               patient.MedicalHistory,
		Allergies:                    patient.Allergies,
		CurrentMedications:           patient.CurrentMedications,
		InsuranceNumber:              patient.InsuranceNumber,
		InsuranceProvider:            patient.InsuranceProvider,
		IsActive:                     patient.IsActive,
		CreatedAt:                    patient.CreatedAt,
		UpdatedAt:                    patient.UpdatedAt,
	}

	if patient.User.ID != uuid.Nil {
		response.FullName = patient.User.FullName()
		response.Email = patient.User.Email
	}

	return response
}

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		resp := PatientToResponse(&patients[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
