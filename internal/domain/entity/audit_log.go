package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action    string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  JSON       `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Common audit actions
const (
	AuditActionUserLogin           = "user.login"
	AuditActionUserRegister        = "user.register"
	AuditActionUserCreate          = "user.create"
	AuditActionUserUpdate          = "user.update"
	AuditActionUserDelete          = "user.delete"
	AuditActionUserPasswordReset   = "user.password_reset"
	AuditActionUserToggleStatus    = "user.toggle_status"
	AuditActionClinicCreate        = "clinic.create"
	AuditActionClinicUpdate        = "clinic.update"
	AuditActionClinicDelete        = "clinic.delete"
	AuditActionServiceCreate       = "service.create"
	AuditActionServiceUpdate       = "service.update"
	AuditActionServiceDelete       = "service.delete"
	AuditActionAppointmentCreate   = "appointment.create"
	AuditActionAppointmentUpdate   = "appointment.update"
	AuditActionAppointmentConfirm  = "appointment.confirm"
	AuditActionAppointmentCancel   = "appointment.cancel"
	AuditActionConversationCreate  = "conversation.create"
	AuditActionConversationHide    = "conversation.hide"
	AuditActionMessageSend         = "message.send"
	AuditActionMessageDelete       = "message.delete"
	AuditActionPatientUpdate       = "patient.update"
	AuditActionDoctorUpdate        = "doctor.update"
	AuditActionReceptionistUpdate  = "receptionist.update"
)
