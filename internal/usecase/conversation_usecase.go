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

type ConversationUsecase interface {
	// Create returns the existing conversation when one with the same clinic
	// and participant set is already active; created reports which happened.
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateConversationRequest) (resp *dto.ConversationResponse, created bool, err error)
	List(ctx context.Context, actorID uuid.UUID) ([]dto.ConversationResponse, error)
	Get(ctx context.Context, actorID, id uuid.UUID) (*dto.ConversationResponse, error)
	Hide(ctx context.Context, actorID, id uuid.UUID) error
	MarkRead(ctx context.Context, actorID, id uuid.UUID) (*dto.MarkReadResponse, error)
	AddParticipant(ctx context.Context, actorID, id uuid.UUID, req *dto.AddParticipantRequest) (*dto.ConversationResponse, error)
	RemoveParticipant(ctx context.Context, actorID, id, userID uuid.UUID) error
}

type conversationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	conversationRepo repository.ConversationRepository
	messageRepo      repository.MessageRepository
	userRepo         repository.UserRepository
	clinicRepo       repository.ClinicRepository
	actorResolver    *ActorResolver
	auditService     service.AuditService
}

func NewConversationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	conversationRepo repository.ConversationRepository,
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	clinicRepo repository.ClinicRepository,
	actorResolver *ActorResolver,
	auditService service.AuditService,
) ConversationUsecase {
	return &conversationUsecase{
		db:               db,
		log:              log,
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		userRepo:         userRepo,
		clinicRepo:       clinicRepo,
		actorResolver:    actorResolver,
		auditService:     auditService,
	}
}

func (u *conversationUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateConversationRequest) (*dto.ConversationResponse, bool, error) {
	actor, err := u.actorResolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, false, err
	}

	clinicID, err := u.resolveClinic(ctx, actor, req.ClinicID)
	if err != nil {
		return nil, false, err
	}

	ids := make([]uuid.UUID, 0, len(req.ParticipantIDs))
	for _, raw := range req.ParticipantIDs {
		id, err := parseUUID(raw)
		if err != nil {
			return nil, false, err
		}
		ids = append(ids, id)
	}

	participantIDs := NormalizeParticipants(actorID, ids)
	if len(participantIDs) < 2 {
		return nil, false, ErrTooFewParticipants
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	participants := make([]entity.User, 0, len(participantIDs))
	for _, id := range participantIDs {
		user, err := u.userRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find participant: %+v", err)
			return nil, false, err
		}
		if user == nil {
			return nil, false, ErrUserNotFound
		}
		participants = append(participants, *user)
	}

	// Same clinic plus same participant set means the same conversation.
	active, err := u.conversationRepo.FindActiveByClinic(tx, clinicID)
	if err != nil {
		u.log.Warnf("Failed to load conversations: %+v", err)
		return nil, false, err
	}
	for i := range active {
		if SameParticipants(active[i].ParticipantIDs(), participantIDs) {
			resp, err := u.toResponse(ctx, actorID, &active[i])
			return resp, false, err
		}
	}

	conversation := &entity.Conversation{
		ClinicID: clinicID,
		Subject:  req.Subject,
		IsActive: true,
	}

	if err := u.conversationRepo.Create(tx, conversation, participants); err != nil {
		u.log.Warnf("Failed to create conversation: %+v", err)
		return nil, false, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionConversationCreate,
		"conversation", conversation.ID.String(), entity.JSON{"subject": conversation.Subject}); err != nil {
		return nil, false, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, false, err
	}

	conversation.Participants = participants
	return converter.ConversationToResponse(conversation, nil, 0), true, nil
}

func (u *conversationUsecase) resolveClinic(ctx context.Context, actor *Actor, rawClinicID string) (uuid.UUID, error) {
	if clinicID, ok := actor.ClinicID(); ok {
		return clinicID, nil
	}

	// Admins belong to no clinic and must name one.
	clinicID, err := parseOptionalUUID(rawClinicID)
	if err != nil {
		return uuid.Nil, err
	}
	if clinicID == uuid.Nil {
		return uuid.Nil, ErrClinicNotFound
	}

	clinic, err := u.clinicRepo.FindByID(u.db.WithContext(ctx), clinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic: %+v", err)
		return uuid.Nil, err
	}
	if clinic == nil {
		return uuid.Nil, ErrClinicNotFound
	}
	return clinicID, nil
}

func (u *conversationUsecase) List(ctx context.Context, actorID uuid.UUID) ([]dto.ConversationResponse, error) {
	conversations, err := u.conversationRepo.FindVisibleByUser(u.db.WithContext(ctx), actorID)
	if err != nil {
		u.log.Warnf("Failed to list conversations: %+v", err)
		return nil, err
	}

	responses := make([]dto.ConversationResponse, 0, len(conversations))
	for i := range conversations {
		resp, err := u.toResponse(ctx, actorID, &conversations[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (u *conversationUsecase) Get(ctx context.Context, actorID, id uuid.UUID) (*dto.ConversationResponse, error) {
	conversation, err := u.loadForParticipant(ctx, actorID, id)
	if err != nil {
		return nil, err
	}
	return u.toResponse(ctx, actorID, conversation)
}

func (u *conversationUsecase) toResponse(ctx context.Context, actorID uuid.UUID, conversation *entity.Conversation) (*dto.ConversationResponse, error) {
	db := u.db.WithContext(ctx)

	lastMessage, err := u.messageRepo.FindLastByConversation(db, conversation.ID)
	if err != nil {
		u.log.Warnf("Failed to load last message: %+v", err)
		return nil, err
	}

	unread, err := u.messageRepo.CountUnread(db, conversation.ID, actorID)
	if err != nil {
		u.log.Warnf("Failed to count unread messages: %+v", err)
		return nil, err
	}

	return converter.ConversationToResponse(conversation, lastMessage, unread), nil
}

// Hide removes the conversation from the caller's list and marks every
// current message deleted for them. Other participants are unaffected; the
// conversation reappears if someone writes again, but the deleted messages
// stay gone for this user.
func (u *conversationUsecase) Hide(ctx context.Context, actorID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	conversation, err := u.conversationRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find conversation: %+v", err)
		return err
	}
	if conversation == nil || !conversation.HasParticipant(actorID) {
		return ErrConversationNotFound
	}

	user := &entity.User{ID: actorID}

	if err := u.conversationRepo.HideFor(tx, conversation, user); err != nil {
		u.log.Warnf("Failed to hide conversation: %+v", err)
		return err
	}

	if err := u.messageRepo.DeleteConversationFor(tx, conversation.ID, user); err != nil {
		u.log.Warnf("Failed to delete messages for user: %+v", err)
		return err
	}

	if err := u.auditService.LogAction(ctx, tx, &actorID, entity.AuditActionConversationHide,
		entity.JSON{"entity": "conversation", "entity_id": id.String()}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *conversationUsecase) MarkRead(ctx context.Context, actorID, id uuid.UUID) (*dto.MarkReadResponse, error) {
	conversation, err := u.loadForParticipant(ctx, actorID, id)
	if err != nil {
		return nil, err
	}

	count, err := u.messageRepo.MarkConversationRead(u.db.WithContext(ctx), conversation.ID, actorID)
	if err != nil {
		u.log.Warnf("Failed to mark conversation read: %+v", err)
		return nil, err
	}

	return &dto.MarkReadResponse{MarkedRead: count}, nil
}

func (u *conversationUsecase) AddParticipant(ctx context.Context, actorID, id uuid.UUID, req *dto.AddParticipantRequest) (*dto.ConversationResponse, error) {
	userID, err := parseUUID(req.UserID)
	if err != nil {
		return nil, err
	}

	conversation, err := u.loadForParticipant(ctx, actorID, id)
	if err != nil {
		return nil, err
	}

	if conversation.HasParticipant(userID) {
		return u.toResponse(ctx, actorID, conversation)
	}

	db := u.db.WithContext(ctx)

	user, err := u.userRepo.FindByID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := u.conversationRepo.AddParticipant(db, conversation, user); err != nil {
		u.log.Warnf("Failed to add participant: %+v", err)
		return nil, err
	}

	conversation.Participants = append(conversation.Participants, *user)
	return u.toResponse(ctx, actorID, conversation)
}

func (u *conversationUsecase) RemoveParticipant(ctx context.Context, actorID, id, userID uuid.UUID) error {
	conversation, err := u.loadForParticipant(ctx, actorID, id)
	if err != nil {
		return err
	}

	if !conversation.HasParticipant(userID) {
		return ErrUserNotFound
	}

	if err := u.conversationRepo.RemoveParticipant(u.db.WithContext(ctx), conversation, &entity.User{ID: userID}); err != nil {
		u.log.Warnf("Failed to remove participant: %+v", err)
		return err
	}
	return nil
}

func (u *conversationUsecase) loadForParticipant(ctx context.Context, actorID, id uuid.UUID) (*entity.Conversation, error) {
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
