package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateConversationRequest struct {
	Subject        string   `json:"subject" validate:"required,min=1,max=255"`
	ClinicID       string   `json:"clinic_id" validate:"omitempty,uuid"`
	ParticipantIDs []string `json:"participant_ids" validate:"required,min=1,dive,uuid"`
}

type AddParticipantRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

type SendMessageRequest struct {
	ConversationID string `json:"conversation_id" validate:"required,uuid"`
	Content        string `json:"content" validate:"required,min=1"`
}

type ConversationResponse struct {
	ID           uuid.UUID             `json:"id"`
	ClinicID     uuid.UUID             `json:"clinic_id"`
	Subject      string                `json:"subject"`
	Participants []ParticipantResponse `json:"participants"`
	LastMessage  *MessageResponse      `json:"last_message,omitempty"`
	UnreadCount  int64                 `json:"unread_count"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

type ParticipantResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Role     string    `json:"role,omitempty"`
}

type MessageResponse struct {
	ID             uuid.UUID  `json:"id"`
	ConversationID uuid.UUID  `json:"conversation_id"`
	SenderID       uuid.UUID  `json:"sender_id"`
	SenderName     string     `json:"sender_name,omitempty"`
	Content        string     `json:"content"`
	IsRead         bool       `json:"is_read"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type MarkReadResponse struct {
	MarkedRead int64 `json:"marked_read"`
}
