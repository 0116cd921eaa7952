package usecase

import (
	"context"
	"testing"

	"medflow-server/internal/delivery/dto"
	"medflow-server/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedConversation(participants ...uuid.UUID) *entity.Conversation {
	users := make([]entity.User, len(participants))
	for i, id := range participants {
		users[i] = entity.User{ID: id}
	}
	return &entity.Conversation{
		ID:           uuid.New(),
		ClinicID:     uuid.New(),
		Subject:      "Follow-up",
		IsActive:     true,
		Participants: users,
	}
}

func seedMessage(conversationID, senderID uuid.UUID, content string) *entity.Message {
	return &entity.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
	}
}

func newConversationUsecaseForTest(t *testing.T, convRepo *fakeConversationRepo, msgRepo *fakeMessageRepo) ConversationUsecase {
	t.Helper()
	return NewConversationUsecase(testDB(t), logrus.New(), convRepo, msgRepo, nil, nil, nil, nopAuditService{})
}

func newMessageUsecaseForTest(t *testing.T, msgRepo *fakeMessageRepo, convRepo *fakeConversationRepo) MessageUsecase {
	t.Helper()
	return NewMessageUsecase(testDB(t), logrus.New(), msgRepo, convRepo, nopAuditService{})
}

func TestHideConversationDeletesMessagesForCaller(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	conversation := seedConversation(alice, bob)
	convRepo := newFakeConversationRepo(conversation)
	msgRepo := &fakeMessageRepo{messages: []*entity.Message{
		seedMessage(conversation.ID, bob, "hello"),
		seedMessage(conversation.ID, alice, "hi"),
	}}

	convUsecase := newConversationUsecaseForTest(t, convRepo, msgRepo)
	msgUsecase := newMessageUsecaseForTest(t, msgRepo, convRepo)

	require.NoError(t, convUsecase.Hide(ctx, alice, conversation.ID))

	assert.Len(t, conversation.HiddenFor, 1)
	assert.Equal(t, alice, conversation.HiddenFor[0].ID)
	for _, m := range msgRepo.messages {
		assert.True(t, messageDeletedFor(m, alice))
		assert.False(t, messageDeletedFor(m, bob))
	}

	aliceMessages, err := msgUsecase.List(ctx, alice, conversation.ID)
	require.NoError(t, err)
	assert.Empty(t, aliceMessages)

	bobMessages, err := msgUsecase.List(ctx, bob, conversation.ID)
	require.NoError(t, err)
	assert.Len(t, bobMessages, 2)

	aliceConversations, err := convUsecase.List(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, aliceConversations)

	bobConversations, err := convUsecase.List(ctx, bob)
	require.NoError(t, err)
	assert.Len(t, bobConversations, 1)
}

func TestHideConversationIsIdempotent(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	conversation := seedConversation(alice, bob)
	convRepo := newFakeConversationRepo(conversation)
	msgRepo := &fakeMessageRepo{messages: []*entity.Message{
		seedMessage(conversation.ID, bob, "hello"),
	}}

	convUsecase := newConversationUsecaseForTest(t, convRepo, msgRepo)

	require.NoError(t, convUsecase.Hide(ctx, alice, conversation.ID))
	require.NoError(t, convUsecase.Hide(ctx, alice, conversation.ID))

	assert.Len(t, conversation.HiddenFor, 1)
	assert.Len(t, msgRepo.messages[0].DeletedFor, 1)
}

func TestHideConversationRequiresParticipant(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()

	conversation := seedConversation(alice, bob)
	convRepo := newFakeConversationRepo(conversation)
	msgRepo := &fakeMessageRepo{}

	convUsecase := newConversationUsecaseForTest(t, convRepo, msgRepo)

	err := convUsecase.Hide(ctx, carol, conversation.ID)
	assert.ErrorIs(t, err, ErrConversationNotFound)
	assert.Empty(t, conversation.HiddenFor)
}

func TestSendMessageUnhidesConversationKeepsDeleted(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	conversation := seedConversation(alice, bob)
	convRepo := newFakeConversationRepo(conversation)
	msgRepo := &fakeMessageRepo{messages: []*entity.Message{
		seedMessage(conversation.ID, bob, "old message"),
	}}

	convUsecase := newConversationUsecaseForTest(t, convRepo, msgRepo)
	msgUsecase := newMessageUsecaseForTest(t, msgRepo, convRepo)

	require.NoError(t, convUsecase.Hide(ctx, alice, conversation.ID))
	require.Len(t, conversation.HiddenFor, 1)
	before := conversation.UpdatedAt

	resp, err := msgUsecase.Send(ctx, bob, &dto.SendMessageRequest{
		ConversationID: conversation.ID.String(),
		Content:        "are you there?",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	// The conversation reappears for everyone, but messages Alice already
	// deleted stay gone for her.
	assert.Empty(t, conversation.HiddenFor)
	assert.True(t, conversation.UpdatedAt.After(before) || conversation.UpdatedAt.Equal(before))

	aliceConversations, err := convUsecase.List(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, aliceConversations, 1)

	aliceMessages, err := msgUsecase.List(ctx, alice, conversation.ID)
	require.NoError(t, err)
	require.Len(t, aliceMessages, 1)
	assert.Equal(t, "are you there?", aliceMessages[0].Content)

	bobMessages, err := msgUsecase.List(ctx, bob, conversation.ID)
	require.NoError(t, err)
	assert.Len(t, bobMessages, 2)
}

func TestMarkConversationReadSkipsOwnMessages(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	conversation := seedConversation(alice, bob)
	convRepo := newFakeConversationRepo(conversation)
	fromBob1 := seedMessage(conversation.ID, bob, "one")
	fromBob2 := seedMessage(conversation.ID, bob, "two")
	fromAlice := seedMessage(conversation.ID, alice, "three")
	msgRepo := &fakeMessageRepo{messages: []*entity.Message{fromBob1, fromBob2, fromAlice}}

	convUsecase := newConversationUsecaseForTest(t, convRepo, msgRepo)

	resp, err := convUsecase.MarkRead(ctx, alice, conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.MarkedRead)

	assert.True(t, fromBob1.IsRead)
	require.NotNil(t, fromBob1.ReadAt)
	assert.True(t, fromBob2.IsRead)
	assert.False(t, fromAlice.IsRead)

	resp, err = convUsecase.MarkRead(ctx, alice, conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.MarkedRead)
}

func TestMarkMessageReadBySenderIsNoOp(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	conversation := seedConversation(alice, bob)
	convRepo := newFakeConversationRepo(conversation)
	message := seedMessage(conversation.ID, alice, "hello")
	msgRepo := &fakeMessageRepo{messages: []*entity.Message{message}}

	msgUsecase := newMessageUsecaseForTest(t, msgRepo, convRepo)

	resp, err := msgUsecase.MarkRead(ctx, alice, message.ID)
	require.NoError(t, err)
	assert.False(t, resp.IsRead)
	assert.False(t, message.IsRead)
	assert.Nil(t, message.ReadAt)

	resp, err = msgUsecase.MarkRead(ctx, bob, message.ID)
	require.NoError(t, err)
	assert.True(t, resp.IsRead)
	assert.True(t, message.IsRead)
	require.NotNil(t, message.ReadAt)
}

func TestDeleteMessageSenderOnly(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	conversation := seedConversation(alice, bob)
	convRepo := newFakeConversationRepo(conversation)
	message := seedMessage(conversation.ID, alice, "hello")
	msgRepo := &fakeMessageRepo{messages: []*entity.Message{message}}

	msgUsecase := newMessageUsecaseForTest(t, msgRepo, convRepo)

	err := msgUsecase.Delete(ctx, bob, message.ID)
	assert.ErrorIs(t, err, ErrNotSender)
	assert.Len(t, msgRepo.messages, 1)

	require.NoError(t, msgUsecase.Delete(ctx, alice, message.ID))
	assert.Empty(t, msgRepo.messages)
}

func TestDeleteMessageForMeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	conversation := seedConversation(alice, bob)
	convRepo := newFakeConversationRepo(conversation)
	message := seedMessage(conversation.ID, alice, "hello")
	msgRepo := &fakeMessageRepo{messages: []*entity.Message{message}}

	msgUsecase := newMessageUsecaseForTest(t, msgRepo, convRepo)

	require.NoError(t, msgUsecase.DeleteForMe(ctx, bob, message.ID))
	require.NoError(t, msgUsecase.DeleteForMe(ctx, bob, message.ID))
	assert.Len(t, message.DeletedFor, 1)

	bobMessages, err := msgUsecase.List(ctx, bob, conversation.ID)
	require.NoError(t, err)
	assert.Empty(t, bobMessages)

	aliceMessages, err := msgUsecase.List(ctx, alice, conversation.ID)
	require.NoError(t, err)
	assert.Len(t, aliceMessages, 1)
}

func TestMessageAccessRequiresParticipant(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()

	conversation := seedConversation(alice, bob)
	convRepo := newFakeConversationRepo(conversation)
	message := seedMessage(conversation.ID, alice, "hello")
	msgRepo := &fakeMessageRepo{messages: []*entity.Message{message}}

	msgUsecase := newMessageUsecaseForTest(t, msgRepo, convRepo)

	_, err := msgUsecase.List(ctx, carol, conversation.ID)
	assert.ErrorIs(t, err, ErrConversationNotFound)

	_, err = msgUsecase.MarkRead(ctx, carol, message.ID)
	assert.ErrorIs(t, err, ErrMessageNotFound)

	_, err = msgUsecase.Send(ctx, carol, &dto.SendMessageRequest{
		ConversationID: conversation.ID.String(),
		Content:        "let me in",
	})
	assert.ErrorIs(t, err, ErrConversationNotFound)
}
