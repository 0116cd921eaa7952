package converter

import (
	"medflow-server/internal/delivery/dto"
	"medflow-server/internal/domain/entity"

	"github.com/google/uuid"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:                doctor.ID,
		UserID:            doctor.UserID,
		ClinicID:          doctor.ClinicID,
		DoctorCode:        doctor.DoctorCode,
		Specialization:    doctor.Specialization,
		LicenseNumber:     doctor.LicenseNumber,
		YearsOfExperience: doctor.YearsOfExperience,
		Education:         doctor.Education,
		Certifications:    doctor.Certifications,
		ConsultationFee:   doctor.ConsultationFee.StringFixed(2),
		AvailableDays:     doctor.AvailableDays,
		AvailableHours:    doctor.AvailableHours,
		IsAvailable:       doctor.IsAvailable,
		IsActive:          doctor.IsActive,
		CreatedAt:         doctor.CreatedAt,
		UpdatedAt:         doctor.UpdatedAt,
	}

	if doctor.User.ID != uuid.Nil {
		response.FullName = doctor.User.FullName()
		response.Email = doctor.User.Email
	}

	return response
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		resp := DoctorToResponse(&doctors[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
