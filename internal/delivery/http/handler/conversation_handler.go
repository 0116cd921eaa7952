package handler

import (
	"encoding/json"
	"net/http"

	"medflow-server/internal/delivery/dto"
	"medflow-server/internal/delivery/http/middleware"
	"medflow-server/internal/usecase"
	"medflow-server/pkg/response"
	"medflow-server/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ConversationHandler struct {
	conversationUsecase usecase.ConversationUsecase
	validator           *validator.CustomValidator
}

func NewConversationHandler(conversationUsecase usecase.ConversationUsecase, validator *validator.CustomValidator) *ConversationHandler {
	return &ConversationHandler{
		conversationUsecase: conversationUsecase,
		validator:           validator,
	}
}

func (h *ConversationHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	conversation, created, err := h.conversationUsecase.Create(r.Context(), actorID, &req)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	if created {
		response.Success(w, http.StatusCreated, "Conversation created successfully", conversation)
		return
	}
	response.Success(w, http.StatusOK, "Conversation already exists", conversation)
}

func (h *ConversationHandler) List(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	conversations, err := h.conversationUsecase.List(r.Context(), actorID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Conversations retrieved successfully", conversations)
}

func (h *ConversationHandler) Get(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid conversation ID", nil)
		return
	}

	conversation, err := h.conversationUsecase.Get(r.Context(), actorID, id)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Conversation retrieved successfully", conversation)
}

func (h *ConversationHandler) Hide(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid conversation ID", nil)
		return
	}

	if err := h.conversationUsecase.Hide(r.Context(), actorID, id); err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Conversation hidden successfully", nil)
}

func (h *ConversationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid conversation ID", nil)
		return
	}

	result, err := h.conversationUsecase.MarkRead(r.Context(), actorID, id)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Conversation marked as read", result)
}

func (h *ConversationHandler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid conversation ID", nil)
		return
	}

	var req dto.AddParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	conversation, err := h.conversationUsecase.AddParticipant(r.Context(), actorID, id, &req)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Participant added successfully", conversation)
}

func (h *ConversationHandler) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid conversation ID", nil)
		return
	}

	userID, err := uuid.Parse(vars["user_id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	if err := h.conversationUsecase.RemoveParticipant(r.Context(), actorID, id, userID); err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Participant removed successfully", nil)
}
