package repository

import (
	"medflow-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(db *gorm.DB, message *entity.Message) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Message, error)
	// FindVisibleByConversation returns the conversation's messages excluding
	// those the user has deleted for themselves, oldest first.
	FindVisibleByConversation(db *gorm.DB, conversationID, userID uuid.UUID) ([]entity.Message, error)
	FindByConversation(db *gorm.DB, conversationID uuid.UUID) ([]entity.Message, error)
	FindLastByConversation(db *gorm.DB, conversationID uuid.UUID) (*entity.Message, error)
	CountUnread(db *gorm.DB, conversationID, excludeSenderID uuid.UUID) (int64, error)
	// MarkConversationRead stamps is_read/read_at on unread messages not
	// authored by the reader; returns the number of rows updated.
	MarkConversationRead(db *gorm.DB, conversationID, readerID uuid.UUID) (int64, error)
	MarkRead(db *gorm.DB, message *entity.Message) error
	DeleteFor(db *gorm.DB, message *entity.Message, user *entity.User) error
	// DeleteConversationFor marks every current message of the conversation
	// as deleted for the user.
	DeleteConversationFor(db *gorm.DB, conversationID uuid.UUID, user *entity.User) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
