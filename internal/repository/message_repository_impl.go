package repository

import (
	"errors"
	"time"

	"medflow-server/internal/domain/entity"
	domainRepo "medflow-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type messageRepository struct{}

func NewMessageRepository() domainRepo.MessageRepository {
	return &messageRepository{}
}

func (r *messageRepository) Create(db *gorm.DB, message *entity.Message) error {
	return db.Create(message).Error
}

func (r *messageRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Message, error) {
	var message entity.Message
	err := db.Preload("Sender").Where("id = ?", id).First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) FindVisibleByConversation(db *gorm.DB, conversationID, userID uuid.UUID) ([]entity.Message, error) {
	var messages []entity.Message
	err := db.Preload("Sender").
		Where("conversation_id = ?", conversationID).
		Where("id NOT IN (?)",
			db.Session(&gorm.Session{NewDB: true}).
				Table("message_deleted_for").
				Select("message_id").
				Where("user_id = ?", userID)).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) FindByConversation(db *gorm.DB, conversationID uuid.UUID) ([]entity.Message, error) {
	var messages []entity.Message
	err := db.Where("conversation_id = ?", conversationID).
		Order("created_at ASC").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) FindLastByConversation(db *gorm.DB, conversationID uuid.UUID) (*entity.Message, error) {
	var message entity.Message
	err := db.Preload("Sender").
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC").First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) CountUnread(db *gorm.DB, conversationID, excludeSenderID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Message{}).
		Where("conversation_id = ? AND is_read = ? AND sender_id <> ?",
			conversationID, false, excludeSenderID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *messageRepository) MarkConversationRead(db *gorm.DB, conversationID, readerID uuid.UUID) (int64, error) {
	now := time.Now()
	result := db.Model(&entity.Message{}).
		Where("conversation_id = ? AND is_read = ? AND sender_id <> ?",
			conversationID, false, readerID).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": now,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *messageRepository) MarkRead(db *gorm.DB, message *entity.Message) error {
	now := time.Now()
	message.IsRead = true
	message.ReadAt = &now
	return db.Model(message).Updates(map[string]interface{}{
		"is_read": true,
		"read_at": now,
	}).Error
}

func (r *messageRepository) DeleteFor(db *gorm.DB, message *entity.Message, user *entity.User) error {
	return db.Model(message).Association("DeletedFor").Append(user)
}

func (r *messageRepository) DeleteConversationFor(db *gorm.DB, conversationID uuid.UUID, user *entity.User) error {
	messages, err := r.FindByConversation(db, conversationID)
	if err != nil {
		return err
	}
	for i := range messages {
		if err := db.Model(&messages[i]).Association("DeletedFor").Append(user); err != nil {
			return err
		}
	}
	return nil
}

func (r *messageRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Message{}).Error
}
