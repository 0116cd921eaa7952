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

type MessageHandler struct {
	messageUsecase usecase.MessageUsecase
	validator      *validator.CustomValidator
}

func NewMessageHandler(messageUsecase usecase.MessageUsecase, validator *validator.CustomValidator) *MessageHandler {
	return &MessageHandler{
		messageUsecase: messageUsecase,
		validator:      validator,
	}
}

func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	conversationID, err := uuid.Parse(r.URL.Query().Get("conversation"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "conversation query parameter is required", nil)
		return
	}

	messages, err := h.messageUsecase.List(r.Context(), actorID, conversationID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Messages retrieved successfully", messages)
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	message, err := h.messageUsecase.Send(r.Context(), actorID, &req)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Message sent successfully", message)
}

func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid message ID", nil)
		return
	}

	message, err := h.messageUsecase.MarkRead(r.Context(), actorID, id)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Message marked as read", message)
}

func (h *MessageHandler) DeleteForMe(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid message ID", nil)
		return
	}

	if err := h.messageUsecase.DeleteForMe(r.Context(), actorID, id); err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Message deleted for you", nil)
}

func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid message ID", nil)
		return
	}

	if err := h.messageUsecase.Delete(r.Context(), actorID, id); err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Message deleted successfully", nil)
}
