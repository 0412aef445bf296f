package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"aiactcheck/internal/service"
)

// ScoreHandler handles score endpoints
type ScoreHandler struct {
	scoreSvc *service.ScoreService
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(scoreSvc *service.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreSvc: scoreSvc}
}

// Compute handles POST /v1/usecases/{usecaseId}/score
func (h *ScoreHandler) Compute(w http.ResponseWriter, r *http.Request) {
	usecaseID := mux.Vars(r)["usecaseId"]

	result, err := h.scoreSvc.Compute(r.Context(), usecaseID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// Latest handles GET /v1/usecases/{usecaseId}/score
func (h *ScoreHandler) Latest(w http.ResponseWriter, r *http.Request) {
	usecaseID := mux.Vars(r)["usecaseId"]

	result, err := h.scoreSvc.Latest(r.Context(), usecaseID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if result == nil {
		writeError(w, http.StatusNotFound, "no score computed yet")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// History handles GET /v1/usecases/{usecaseId}/scores
func (h *ScoreHandler) History(w http.ResponseWriter, r *http.Request) {
	usecaseID := mux.Vars(r)["usecaseId"]

	results, err := h.scoreSvc.History(r.Context(), usecaseID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"scores": results})
}
