package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"aiactcheck/internal/model"
	"aiactcheck/internal/service"
	"aiactcheck/internal/transport/rest/middleware"
)

// UsecaseHandler handles use case endpoints
type UsecaseHandler struct {
	usecaseSvc *service.UsecaseService
}

// NewUsecaseHandler creates a new use case handler
func NewUsecaseHandler(usecaseSvc *service.UsecaseService) *UsecaseHandler {
	return &UsecaseHandler{usecaseSvc: usecaseSvc}
}

// UsecaseRequest is the request body for creating or updating a use case
type UsecaseRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Create handles POST /v1/usecases
func (h *UsecaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	assessorID := middleware.GetAssessorID(r.Context())
	if assessorID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req UsecaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	usecase := &model.UseCase{
		OwnerID:     assessorID,
		Name:        req.Name,
		Description: req.Description,
	}

	id, err := h.usecaseSvc.Create(r.Context(), usecase)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"usecaseId": id})
}

// List handles GET /v1/usecases
func (h *UsecaseHandler) List(w http.ResponseWriter, r *http.Request) {
	assessorID := middleware.GetAssessorID(r.Context())
	if assessorID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	usecases, err := h.usecaseSvc.GetByOwner(r.Context(), assessorID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"usecases": usecases})
}

// Get handles GET /v1/usecases/{usecaseId}
func (h *UsecaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	usecaseID := mux.Vars(r)["usecaseId"]

	usecase, err := h.usecaseSvc.GetByID(r.Context(), usecaseID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if usecase == nil {
		writeError(w, http.StatusNotFound, "use case not found")
		return
	}

	writeJSON(w, http.StatusOK, usecase)
}

// Update handles PUT /v1/usecases/{usecaseId}
func (h *UsecaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	usecaseID := mux.Vars(r)["usecaseId"]

	var req UsecaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	usecase, err := h.usecaseSvc.GetByID(r.Context(), usecaseID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if usecase == nil {
		writeError(w, http.StatusNotFound, "use case not found")
		return
	}

	usecase.Name = req.Name
	usecase.Description = req.Description

	if err := h.usecaseSvc.Update(r.Context(), usecase); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, usecase)
}

// Delete handles DELETE /v1/usecases/{usecaseId}
func (h *UsecaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	usecaseID := mux.Vars(r)["usecaseId"]

	if err := h.usecaseSvc.Delete(r.Context(), usecaseID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
