package entity

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is a discussion thread between users of one clinic.
// HiddenFor is per-user soft visibility: a hidden conversation stays intact
// for the other participants and reappears for everyone on the next message.
type Conversation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClinicID  uuid.UUID `gorm:"type:uuid;not null;index" json:"clinic_id"`
	Subject   string    `gorm:"type:varchar(255);not null" json:"subject"`
	IsActive  bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;index" json:"updated_at"`

	// Relationships
	Clinic       Clinic    `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
	Participants []User    `gorm:"many2many:conversation_participants" json:"participants,omitempty"`
	HiddenFor    []User    `gorm:"many2many:conversation_hidden_for" json:"-"`
	Messages     []Message `gorm:"foreignKey:ConversationID" json:"messages,omitempty"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// ParticipantIDs returns the loaded participants' user IDs.
func (c *Conversation) ParticipantIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(c.Participants))
	for i, p := range c.Participants {
		ids[i] = p.ID
	}
	return ids
}

// HasParticipant reports whether the user takes part in the conversation.
// Participants must be preloaded.
func (c *Conversation) HasParticipant(userID uuid.UUID) bool {
	for _, p := range c.Participants {
		if p.ID == userID {
			return true
		}
	}
	return false
}
