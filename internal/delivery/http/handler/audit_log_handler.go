package handler

import (
	"net/http"
	"strconv"

	"medflow-server/internal/usecase"
	"medflow-server/pkg/response"

	"github.com/gorilla/mux"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{auditLogUsecase: auditLogUsecase}
}

func (h *AuditLogHandler) List(w http.ResponseWriter, r *http.Request) {
	logs, err := h.auditLogUsecase.List(r.Context())
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
}

func (h *AuditLogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid audit log ID", nil)
		return
	}

	log, err := h.auditLogUsecase.Get(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", log)
}
