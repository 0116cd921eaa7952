package usecase

import "errors"

var (
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrAccountDisabled      = errors.New("account is disabled")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrTokenRevoked         = errors.New("token has been revoked")
	ErrUserNotFound         = errors.New("user not found")
	ErrRoleNotFound         = errors.New("role not found")
	ErrInvalidDateFormat    = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidDateTime      = errors.New("invalid datetime format, use RFC 3339")
	ErrInvalidUUID          = errors.New("invalid id format")
	ErrInvalidAmount        = errors.New("invalid decimal amount")
	ErrNoActiveClinic       = errors.New("no active clinic available")
	ErrClinicNotFound       = errors.New("clinic not found")
	ErrServiceNotFound      = errors.New("service not found")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrReceptionistNotFound = errors.New("receptionist not found")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrMessageNotFound      = errors.New("message not found")
	ErrAuditLogNotFound     = errors.New("audit log not found")
	ErrForbidden            = errors.New("you do not have permission to perform this action")
	ErrNotSender            = errors.New("only the sender can delete this message")
	ErrPastAppointment      = errors.New("appointment date must be in the future")
	ErrDoctorUnavailable    = errors.New("doctor is not accepting appointments")
	ErrStatusTransition     = errors.New("appointment status does not allow this action")
	ErrTooFewParticipants   = errors.New("a conversation needs at least two participants")
	ErrProfileRequired      = errors.New("profile data is required for this role")
	ErrLicenseAlreadyExists = errors.New("license number already exists")
	ErrServiceNameTaken     = errors.New("service name already exists in this clinic")
)
