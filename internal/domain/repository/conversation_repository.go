package repository

import (
	"medflow-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConversationRepository interface {
	Create(db *gorm.DB, conversation *entity.Conversation, participants []entity.User) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Conversation, error)
	// FindActiveByClinic returns active conversations of a clinic with
	// participants preloaded, for identity de-duplication.
	FindActiveByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.Conversation, error)
	// FindVisibleByUser returns the user's active conversations minus those
	// the user has hidden, newest activity first.
	FindVisibleByUser(db *gorm.DB, userID uuid.UUID) ([]entity.Conversation, error)
	AddParticipant(db *gorm.DB, conversation *entity.Conversation, user *entity.User) error
	RemoveParticipant(db *gorm.DB, conversation *entity.Conversation, user *entity.User) error
	HideFor(db *gorm.DB, conversation *entity.Conversation, user *entity.User) error
	// UnhideForAll clears the hidden set so the conversation reappears for
	// every participant.
	UnhideForAll(db *gorm.DB, conversation *entity.Conversation) error
	Touch(db *gorm.DB, id uuid.UUID) error
}
