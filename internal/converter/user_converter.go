package converter

import (
	"medflow-server/internal/delivery/dto"
	"medflow-server/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		FullName:    user.FullName(),
		Role:        user.Role.RoleName,
		PhoneNumber: user.PhoneNumber,
		Address:     user.Address,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}

	if user.DateOfBirth != nil {
		response.DateOfBirth = user.DateOfBirth.Format("2006-01-02")
	}

	if user.PatientProfile != nil {
		response.PatientProfile = PatientToResponse(user.PatientProfile)
	}
	if user.DoctorProfile != nil {
		response.DoctorProfile = DoctorToResponse(user.DoctorProfile)
	}
	if user.ReceptionistProfile != nil {
		response.ReceptionistProfile = ReceptionistToResponse(user.ReceptionistProfile)
	}

	return response
}

// UsersToResponses converts a slice of User entities to slice of UserResponse DTOs
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		resp := UserToResponse(&users[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
