package repository

import (
	"errors"
	"time"

	"medflow-server/internal/domain/entity"
	domainRepo "medflow-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type conversationRepository struct{}

func NewConversationRepository() domainRepo.ConversationRepository {
	return &conversationRepository{}
}

func (r *conversationRepository) Create(db *gorm.DB, conversation *entity.Conversation, participants []entity.User) error {
	if err := db.Create(conversation).Error; err != nil {
		return err
	}
	return db.Model(conversation).Association("Participants").Append(participants)
}

func (r *conversationRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Conversation, error) {
	var conversation entity.Conversation
	err := db.Preload("Participants").Preload("HiddenFor").
		Where("id = ?", id).First(&conversation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conversation, nil
}

func (r *conversationRepository) FindActiveByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.Conversation, error) {
	var conversations []entity.Conversation
	err := db.Preload("Participants").
		Where("clinic_id = ? AND is_active = ?", clinicID, true).
		Find(&conversations).Error
	if err != nil {
		return nil, err
	}
	return conversations, nil
}

func (r *conversationRepository) FindVisibleByUser(db *gorm.DB, userID uuid.UUID) ([]entity.Conversation, error) {
	var conversations []entity.Conversation
	err := db.Preload("Participants").
		Joins("JOIN conversation_participants cp ON cp.conversation_id = conversations.id").
		Where("cp.user_id = ? AND conversations.is_active = ?", userID, true).
		Where("conversations.id NOT IN (?)",
			db.Session(&gorm.Session{NewDB: true}).
				Table("conversation_hidden_for").
				Select("conversation_id").
				Where("user_id = ?", userID)).
		Order("conversations.updated_at DESC").
		Find(&conversations).Error
	if err != nil {
		return nil, err
	}
	return conversations, nil
}

func (r *conversationRepository) AddParticipant(db *gorm.DB, conversation *entity.Conversation, user *entity.User) error {
	return db.Model(conversation).Association("Participants").Append(user)
}

func (r *conversationRepository) RemoveParticipant(db *gorm.DB, conversation *entity.Conversation, user *entity.User) error {
	return db.Model(conversation).Association("Participants").Delete(user)
}

func (r *conversationRepository) HideFor(db *gorm.DB, conversation *entity.Conversation, user *entity.User) error {
	return db.Model(conversation).Association("HiddenFor").Append(user)
}

func (r *conversationRepository) UnhideForAll(db *gorm.DB, conversation *entity.Conversation) error {
	return db.Model(conversation).Association("HiddenFor").Clear()
}

func (r *conversationRepository) Touch(db *gorm.DB, id uuid.UUID) error {
	return db.Model(&entity.Conversation{}).Where("id = ?", id).
		Update("updated_at", time.Now()).Error
}
