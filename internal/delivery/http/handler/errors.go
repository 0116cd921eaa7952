package handler

import (
	"errors"
	"net/http"

	"medflow-server/internal/usecase"
	"medflow-server/pkg/response"
)

// writeUsecaseError maps the shared usecase sentinels to HTTP replies so the
// handlers only switch on their operation-specific cases.
func writeUsecaseError(w http.ResponseWriter, err error) {
	var conflict *usecase.ConflictError
	if errors.As(err, &conflict) {
		response.Conflict(w, "Doctor is not available at this time", map[string]string{
			"conflict_start": conflict.Start.Format("15:04"),
			"conflict_end":   conflict.End.Format("15:04"),
		})
		return
	}

	switch err {
	case usecase.ErrUserNotFound, usecase.ErrClinicNotFound, usecase.ErrServiceNotFound,
		usecase.ErrPatientNotFound, usecase.ErrDoctorNotFound, usecase.ErrReceptionistNotFound,
		usecase.ErrAppointmentNotFound, usecase.ErrConversationNotFound, usecase.ErrMessageNotFound,
		usecase.ErrAuditLogNotFound, usecase.ErrRoleNotFound:
		response.NotFound(w, err.Error())
	case usecase.ErrForbidden, usecase.ErrNotSender:
		response.Forbidden(w, err.Error())
	case usecase.ErrEmailAlreadyExists, usecase.ErrLicenseAlreadyExists, usecase.ErrServiceNameTaken:
		response.Conflict(w, err.Error(), nil)
	case usecase.ErrInvalidCredentials, usecase.ErrInvalidToken, usecase.ErrTokenRevoked,
		usecase.ErrAccountDisabled:
		response.Unauthorized(w, err.Error())
	case usecase.ErrInvalidDateFormat, usecase.ErrInvalidDateTime, usecase.ErrInvalidUUID,
		usecase.ErrInvalidAmount, usecase.ErrPastAppointment, usecase.ErrDoctorUnavailable,
		usecase.ErrStatusTransition, usecase.ErrTooFewParticipants, usecase.ErrProfileRequired,
		usecase.ErrNoActiveClinic:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.InternalServerError(w, "Something went wrong")
	}
}
