package converter

import (
	"medflow-server/internal/delivery/dto"
	"medflow-server/internal/domain/entity"

	"github.com/google/uuid"
)

// ConversationToResponse converts a Conversation entity to ConversationResponse DTO.
// Last message and unread count are caller-specific and filled by the usecase.
func ConversationToResponse(conversation *entity.Conversation, lastMessage *entity.Message, unreadCount int64) *dto.ConversationResponse {
	if conversation == nil {
		return nil
	}

	participants := make([]dto.ParticipantResponse, len(conversation.Participants))
	for i, p := range conversation.Participants {
		participants[i] = dto.ParticipantResponse{
			ID:       p.ID,
			FullName: p.FullName(),
			Email:    p.Email,
			Role:     p.Role.RoleName,
		}
	}

	return &dto.ConversationResponse{
		ID:           conversation.ID,
		ClinicID:     conversation.ClinicID,
		Subject:      conversation.Subject,
		Participants: participants,
		LastMessage:  MessageToResponse(lastMessage),
		UnreadCount:  unreadCount,
		CreatedAt:    conversation.CreatedAt,
		UpdatedAt:    conversation.UpdatedAt,
	}
}

// MessageToResponse converts a Message entity to MessageResponse DTO
func MessageToResponse(message *entity.Message) *dto.MessageResponse {
	if message == nil {
		return nil
	}

	response := &dto.MessageResponse{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		SenderID:       message.SenderID,
		Content:        message.Content,
		IsRead:         message.IsRead,
		ReadAt:         message.ReadAt,
		CreatedAt:      message.CreatedAt,
	}

	if message.Sender.ID != uuid.Nil {
		response.SenderName = message.Sender.FullName()
	}

	return response
}

// MessagesToResponses converts a slice of Message entities to slice of MessageResponse DTOs
func MessagesToResponses(messages []entity.Message) []dto.MessageResponse {
	responses := make([]dto.MessageResponse, len(messages))
	for i := range messages {
		resp := MessageToResponse(&messages[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
