package converter

import (
	"medflow-server/internal/delivery/dto"
	"medflow-server/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		ClinicID:        appointment.ClinicID,
		ServiceID:       appointment.ServiceID,
		AppointmentDate: appointment.AppointmentDate,
		EndTime:         appointment.End(),
		Duration:        appointment.Duration,
		Status:          string(appointment.Status),
		Reason:          appointment.Reason,
		Notes:           appointment.Notes,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	if appointment.Patient.User.ID != uuid.Nil {
		response.PatientName = appointment.Patient.User.FullName()
	}
	if appointment.Doctor.User.ID != uuid.Nil {
		response.DoctorName = appointment.Doctor.User.FullName()
	}
	if appointment.Service != nil && appointment.Service.ID != uuid.Nil {
		response.Service = ServiceToResponse(appointment.Service)
	}

	return response
}

// SlotsToResponses wraps slot start times in the response element shape.
func SlotsToResponses(startTimes []string) []dto.SlotResponse {
	slots := make([]dto.SlotResponse, len(startTimes))
	for i, start := range startTimes {
		slots[i] = dto.SlotResponse{StartTime: start, Available: true}
	}
	return slots
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		resp := AppointmentToResponse(&appointments[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
