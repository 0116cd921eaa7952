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

type ReceptionistHandler struct {
	receptionistUsecase usecase.ReceptionistUsecase
	validator           *validator.CustomValidator
}

func NewReceptionistHandler(receptionistUsecase usecase.ReceptionistUsecase, validator *validator.CustomValidator) *ReceptionistHandler {
	return &ReceptionistHandler{
		receptionistUsecase: receptionistUsecase,
		validator:           validator,
	}
}

func (h *ReceptionistHandler) List(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	receptionists, err := h.receptionistUsecase.List(r.Context(), actorID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Receptionists retrieved successfully", receptionists)
}

func (h *ReceptionistHandler) Get(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid receptionist ID", nil)
		return
	}

	receptionist, err := h.receptionistUsecase.Get(r.Context(), actorID, id)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Receptionist retrieved successfully", receptionist)
}

func (h *ReceptionistHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid receptionist ID", nil)
		return
	}

	var req dto.ReceptionistProfileInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	receptionist, err := h.receptionistUsecase.Update(r.Context(), actorID, id, &req)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Receptionist updated successfully", receptionist)
}
