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

type ClinicHandler struct {
	clinicUsecase usecase.ClinicUsecase
	validator     *validator.CustomValidator
}

func NewClinicHandler(clinicUsecase usecase.ClinicUsecase, validator *validator.CustomValidator) *ClinicHandler {
	return &ClinicHandler{
		clinicUsecase: clinicUsecase,
		validator:     validator,
	}
}

func (h *ClinicHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateClinicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	clinic, err := h.clinicUsecase.Create(r.Context(), actorID, &req)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Clinic created successfully", clinic)
}

// List is public so the registration form can offer clinics.
func (h *ClinicHandler) List(w http.ResponseWriter, r *http.Request) {
	clinics, err := h.clinicUsecase.List(r.Context())
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Clinics retrieved successfully", clinics)
}

func (h *ClinicHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinic ID", nil)
		return
	}

	clinic, err := h.clinicUsecase.Get(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Clinic retrieved successfully", clinic)
}

func (h *ClinicHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinic ID", nil)
		return
	}

	var req dto.UpdateClinicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	clinic, err := h.clinicUsecase.Update(r.Context(), actorID, id, &req)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Clinic updated successfully", clinic)
}

func (h *ClinicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinic ID", nil)
		return
	}

	if err := h.clinicUsecase.Delete(r.Context(), actorID, id); err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Clinic deleted successfully", nil)
}
