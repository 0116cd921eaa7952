package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is one entry in a conversation. DeletedFor is per-user soft
// deletion, independent of the conversation's hidden set: unhiding a
// conversation never restores messages a user already deleted.
type Message struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ConversationID uuid.UUID  `gorm:"type:uuid;not null;index:idx_messages_conversation_created" json:"conversation_id"`
	SenderID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"sender_id"`
	Content        string     `gorm:"type:text;not null" json:"content"`
	IsRead         bool       `gorm:"not null;default:false;index" json:"is_read"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime;index:idx_messages_conversation_created" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Conversation Conversation `gorm:"foreignKey:ConversationID" json:"-"`
	Sender       User         `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	DeletedFor   []User       `gorm:"many2many:message_deleted_for" json:"-"`
}

func (Message) TableName() string {
	return "messages"
}
