package handler

import (
	"errors"
	"net/http"

	weddingdomain "wedding-rsvp-go/internal/domain/wedding"

	"github.com/go-chi/chi/v5"
)

type questionRequest struct {
	Label    string `json:"label"`
	Type     string `json:"type"`
	Options  string `json:"options"`
	Required bool   `json:"required"`
}

func (h *Handlers) AddQuestion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "wedding_id")

	var req questionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	result, err := h.Weddings.AddQuestion(r.Context(), id, weddingdomain.QuestionInput{
		Label:    req.Label,
		Type:     req.Type,
		Options:  req.Options,
		Required: req.Required,
	})
	if err != nil {
		h.writeQuestionError(w, err, id, "questions.add")
		return
	}

	writeJSON(w, http.StatusCreated, toQuestionResponse(result))
}

func (h *Handlers) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "wedding_id")
	questionID := chi.URLParam(r, "question_id")

	var req questionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	result, err := h.Weddings.UpdateQuestion(r.Context(), id, questionID, weddingdomain.QuestionInput{
		Label:    req.Label,
		Type:     req.Type,
		Options:  req.Options,
		Required: req.Required,
	})
	if err != nil {
		h.writeQuestionError(w, err, id, "questions.update")
		return
	}

	writeJSON(w, http.StatusOK, toQuestionResponse(result))
}

func (h *Handlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "wedding_id")
	questionID := chi.URLParam(r, "question_id")

	if err := h.Weddings.DeleteQuestion(r.Context(), id, questionID); err != nil {
		h.writeQuestionError(w, err, id, "questions.delete")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) writeQuestionError(w http.ResponseWriter, err error, weddingID, op string) {
	switch {
	case errors.Is(err, weddingdomain.ErrWeddingNotFound):
		writeError(w, http.StatusNotFound, "wedding_not_found", "wedding not found")
	case errors.Is(err, weddingdomain.ErrQuestionNotFound):
		writeError(w, http.StatusNotFound, "question_not_found", "question not found")
	case errors.Is(err, weddingdomain.ErrQuestionNotEditable):
		writeError(w, http.StatusConflict, "question_not_editable", "question is not editable")
	case errors.Is(err, weddingdomain.ErrLabelRequired):
		writeError(w, http.StatusBadRequest, "invalid_request", "label is required")
	case errors.Is(err, weddingdomain.ErrInvalidQuestionType):
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid question type")
	case errors.Is(err, weddingdomain.ErrOptionsRequired):
		writeError(w, http.StatusBadRequest, "invalid_request", "options are required for this question type")
	default:
		h.log.InternalError(op+": failed", err, "wedding_id", weddingID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}
