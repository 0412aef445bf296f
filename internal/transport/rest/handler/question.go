package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"aiactcheck/internal/catalog"
)

// QuestionHandler serves the static question catalog
type QuestionHandler struct {
	catalog *catalog.Catalog
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(cat *catalog.Catalog) *QuestionHandler {
	return &QuestionHandler{catalog: cat}
}

// List handles GET /v1/questions
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": h.catalog.AllOrdered(),
		"total":     h.catalog.Len(),
	})
}

// Get handles GET /v1/questions/{code}
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	question, ok := h.catalog.Get(code)
	if !ok {
		writeError(w, http.StatusNotFound, "question not found")
		return
	}

	writeJSON(w, http.StatusOK, question)
}
