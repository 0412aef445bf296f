package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"aiactcheck/internal/model"
	"aiactcheck/internal/service"
)

// AssessmentHandler handles questionnaire progression endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// SaveAnswerRequest is the shape-polymorphic answer payload. Exactly one of
// the three slots should be populated.
type SaveAnswerRequest struct {
	SingleValue       string            `json:"singleValue,omitempty"`
	MultipleCodes     []string          `json:"multipleCodes,omitempty"`
	ConditionalMain   string            `json:"conditionalMain,omitempty"`
	ConditionalValues map[string]string `json:"conditionalValues,omitempty"`
}

func (req *SaveAnswerRequest) answerValue() model.AnswerValue {
	switch {
	case req.ConditionalMain != "":
		return model.ConditionalAnswer(req.ConditionalMain, req.ConditionalValues)
	case len(req.MultipleCodes) > 0:
		return model.MultiAnswer(req.MultipleCodes...)
	case req.SingleValue != "":
		return model.SingleAnswer(req.SingleValue)
	default:
		return model.AnswerValue{}
	}
}

// SaveAnswer handles PUT /v1/usecases/{usecaseId}/answers/{code}
func (h *AssessmentHandler) SaveAnswer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	usecaseID := vars["usecaseId"]
	questionCode := vars["code"]

	var req SaveAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.assessmentSvc.SaveAnswer(r.Context(), usecaseID, questionCode, req.answerValue())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsecaseNotFound), errors.Is(err, service.ErrUnknownQuestion):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrIncompleteAnswer):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// CurrentQuestion handles GET /v1/usecases/{usecaseId}/questions/current
func (h *AssessmentHandler) CurrentQuestion(w http.ResponseWriter, r *http.Request) {
	usecaseID := mux.Vars(r)["usecaseId"]

	question, err := h.assessmentSvc.CurrentQuestion(r.Context(), usecaseID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if question == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"completed": true})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"question": question,
		"progress": h.assessmentSvc.Progress(question.Code),
	})
}

// Progress handles GET /v1/usecases/{usecaseId}/progress?current={code}
func (h *AssessmentHandler) Progress(w http.ResponseWriter, r *http.Request) {
	current := r.URL.Query().Get("current")
	if current == "" {
		writeError(w, http.StatusBadRequest, "current query parameter is required")
		return
	}

	writeJSON(w, http.StatusOK, h.assessmentSvc.Progress(current))
}

// Path handles GET /v1/usecases/{usecaseId}/path?current={code}
func (h *AssessmentHandler) Path(w http.ResponseWriter, r *http.Request) {
	usecaseID := mux.Vars(r)["usecaseId"]
	current := r.URL.Query().Get("current")
	if current == "" {
		writeError(w, http.StatusBadRequest, "current query parameter is required")
		return
	}

	path, err := h.assessmentSvc.Path(r.Context(), usecaseID, current)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"path": path})
}

// Answers handles GET /v1/usecases/{usecaseId}/answers
func (h *AssessmentHandler) Answers(w http.ResponseWriter, r *http.Request) {
	usecaseID := mux.Vars(r)["usecaseId"]

	answers, err := h.assessmentSvc.Answers(r.Context(), usecaseID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"answers": answers})
}
