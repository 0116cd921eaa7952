package usecase

import (
	"context"

	"medflow-server/internal/converter"
	"medflow-server/internal/delivery/dto"
	"medflow-server/internal/domain/entity"
	"medflow-server/internal/domain/repository"
	"medflow-server/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type MessageUsecase interface {
	List(ctx context.Context, actorID, conversationID uuid.UUID) ([]dto.MessageResponse, error)
	Send(ctx context.Context, actorID uuid.UUID, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	MarkRead(ctx context.Context, actorID, id uuid.UUID) (*dto.MessageResponse, error)
	DeleteForMe(ctx context.Context, actorID, id uuid.UUID) error
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}

type messageUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	messageRepo      repository.MessageRepository
	conversationRepo repository.ConversationRepository
	auditService     service.AuditService
}

func NewMessageUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	messageRepo repository.MessageRepository,
	conversationRepo repository.ConversationRepository,
	auditService service.AuditService,
) MessageUsecase {
	return &messageUsecase{
		db:               db,
		log:              log,
		messageRepo:      messageRepo,
		conversationRepo: conversationRepo,
		auditService:     auditService,
	}
}

// List returns the conversation's messages minus those the caller deleted
// for themselves.
func (u *messageUsecase) List(ctx context.Context, actorID, conversationID uuid.UUID) ([]dto.MessageResponse, error) {
	conversation, err := u.loadForParticipant(ctx, actorID, conversationID)
	if err != nil {
		return nil, err
	}

	messages, err := u.messageRepo.FindVisibleByConversation(u.db.WithContext(ctx), conversation.ID, actorID)
	if err != nil {
		u.log.Warnf("Failed to list messages: %+v", err)
		return nil, err
	}

	return converter.MessagesToResponses(messages), nil
}

// Send persists the message and makes the conversation visible again for
// every participant who had hidden it. Per-user deleted messages stay
// deleted; only the hidden flag resets.
func (u *messageUsecase) Send(ctx context.Context, actorID uuid.UUID, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	conversationID, err := parseUUID(req.ConversationID)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	conversation, err := u.conversationRepo.FindByID(tx, conversationID)
	if err != nil {
		u.log.Warnf("Failed to find conversation: %+v", err)
		return nil, err
	}
	if conversation == nil || !conversation.HasParticipant(actorID) {
		return nil, ErrConversationNotFound
	}

	message := &entity.Message{
		ConversationID: conversation.ID,
		SenderID:       actorID,
		Content:        req.Content,
	}

	if err := u.messageRepo.Create(tx, message); err != nil {
		u.log.Warnf("Failed to create message: %+v", err)
		return nil, err
	}

	if err := u.conversationRepo.Touch(tx, conversation.ID); err != nil {
		u.log.Warnf("Failed to touch conversation: %+v", err)
		return nil, err
	}

	if err := u.conversationRepo.UnhideForAll(tx, conversation); err != nil {
		u.log.Warnf("Failed to unhide conversation: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, tx, &actorID, entity.AuditActionMessageSend, entity.JSON{
		"entity":          "message",
		"entity_id":       message.ID.String(),
		"conversation_id": conversation.ID.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MessageToResponse(message), nil
}

// MarkRead stamps the message read. Senders marking their own message is a
// no-op: read state tracks the other side.
func (u *messageUsecase) MarkRead(ctx context.Context, actorID, id uuid.UUID) (*dto.MessageResponse, error) {
	message, _, err := u.loadMessage(ctx, actorID, id)
	if err != nil {
		return nil, err
	}

	if message.SenderID == actorID {
		return converter.MessageToResponse(message), nil
	}

	if !message.IsRead {
		if err := u.messageRepo.MarkRead(u.db.WithContext(ctx), message); err != nil {
			u.log.Warnf("Failed to mark message read: %+v", err)
			return nil, err
		}
	}

	return converter.MessageToResponse(message), nil
}

// DeleteForMe hides the message from the caller only. Repeating the call is
// harmless.
func (u *messageUsecase) DeleteForMe(ctx context.Context, actorID, id uuid.UUID) error {
	message, _, err := u.loadMessage(ctx, actorID, id)
	if err != nil {
		return err
	}

	if err := u.messageRepo.DeleteFor(u.db.WithContext(ctx), message, &entity.User{ID: actorID}); err != nil {
		u.log.Warnf("Failed to delete message for user: %+v", err)
		return err
	}
	return nil
}

// Delete removes the message for everyone. Only the sender may do this.
func (u *messageUsecase) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	message, _, err := u.loadMessage(ctx, actorID, id)
	if err != nil {
		return err
	}

	if message.SenderID != actorID {
		return ErrNotSender
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.messageRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete message: %+v", err)
		return err
	}

	if err := u.auditService.LogAction(ctx, tx, &actorID, entity.AuditActionMessageDelete, entity.JSON{
		"entity":          "message",
		"entity_id":       id.String(),
		"conversation_id": message.ConversationID.String(),
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *messageUsecase) loadMessage(ctx context.Context, actorID, id uuid.UUID) (*entity.Message, *entity.Conversation, error) {
	db := u.db.WithContext(ctx)

	message, err := u.messageRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find message: %+v", err)
		return nil, nil, err
	}
	if message == nil {
		return nil, nil, ErrMessageNotFound
	}

	conversation, err := u.conversationRepo.FindByID(db, message.ConversationID)
	if err != nil {
		u.log.Warnf("Failed to find conversation: %+v", err)
		return nil, nil, err
	}
	if conversation == nil || !conversation.HasParticipant(actorID) {
		return nil, nil, ErrMessageNotFound
	}

	return message, conversation, nil
}

func (u *messageUsecase) loadForParticipant(ctx context.Context, actorID, id uuid.UUID) (*entity.Conversation, error) {
	conversation, err := u.conversationRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find conversation: %+v", err)
		return nil, err
	}
	if conversation == nil || !conversation.HasParticipant(actorID) {
		return nil, ErrConversationNotFound
	}
	return conversation, nil
}
