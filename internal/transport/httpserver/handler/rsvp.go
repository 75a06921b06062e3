package handler

import (
	"errors"
	"net/http"

	guestdomain "wedding-rsvp-go/internal/domain/guest"
	rsvpdomain "wedding-rsvp-go/internal/domain/rsvp"
	weddingdomain "wedding-rsvp-go/internal/domain/wedding"

	"github.com/go-chi/chi/v5"
)

// GetRSVPWedding serves the guest-facing invitation view for a shareable
// rsvp code.
func (h *Handlers) GetRSVPWedding(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	wedding, err := h.Weddings.GetWeddingByCode(r.Context(), code)
	if err != nil {
		h.writeRSVPError(w, err, code, "rsvp.get")
		return
	}

	writeJSON(w, http.StatusOK, rsvpWeddingResponse{
		CoupleName:    wedding.CoupleName,
		Date:          wedding.Date,
		DateDisplay:   weddingdomain.FormatLongDate(wedding.Date),
		Time:          wedding.Time,
		VenueName:     wedding.VenueName,
		Customization: wedding.Customization,
		Questions:     toQuestionResponses(wedding.Questions),
	})
}

func (h *Handlers) OpenRSVPSession(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	session, err := h.RSVP.Open(r.Context(), code)
	if err != nil {
		h.writeRSVPError(w, err, code, "rsvp.open")
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(session))
}

func (h *Handlers) GetRSVPSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")

	session, err := h.RSVP.Get(sessionID)
	if err != nil {
		h.writeRSVPError(w, err, sessionID, "rsvp.session")
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// SearchRSVPGuests lets a guest find themselves by name substring while the
// session is still selecting.
func (h *Handlers) SearchRSVPGuests(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")

	guests, err := h.RSVP.SearchGuests(r.Context(), sessionID, r.URL.Query().Get("search"))
	if err != nil {
		h.writeRSVPError(w, err, sessionID, "rsvp.search")
		return
	}

	writeJSON(w, http.StatusOK, toGuestResponses(guests))
}

type selectGuestRequest struct {
	GuestID string `json:"guestId"`
}

func (h *Handlers) SelectRSVPGuest(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")

	var req selectGuestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.GuestID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "guestId is required")
		return
	}

	session, err := h.RSVP.SelectGuest(r.Context(), sessionID, req.GuestID)
	if err != nil {
		h.writeRSVPError(w, err, sessionID, "rsvp.select")
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

type setAnswerRequest struct {
	QuestionID string `json:"questionId"`
	Value      string `json:"value"`
}

func (h *Handlers) SetRSVPAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")

	var req setAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.QuestionID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "questionId is required")
		return
	}

	session, err := h.RSVP.SetAnswer(sessionID, req.QuestionID, req.Value)
	if err != nil {
		h.writeRSVPError(w, err, sessionID, "rsvp.answer")
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

func (h *Handlers) BackRSVPSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")

	session, err := h.RSVP.Back(sessionID)
	if err != nil {
		h.writeRSVPError(w, err, sessionID, "rsvp.back")
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

func (h *Handlers) SubmitRSVP(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")

	result, err := h.RSVP.Submit(r.Context(), sessionID)
	if err != nil {
		h.writeRSVPError(w, err, sessionID, "rsvp.submit")
		return
	}

	writeJSON(w, http.StatusOK, toGuestResponse(result))
}

func (h *Handlers) CloseRSVPSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")

	if err := h.RSVP.Close(sessionID); err != nil {
		h.writeRSVPError(w, err, sessionID, "rsvp.close")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) writeRSVPError(w http.ResponseWriter, err error, ref, op string) {
	switch {
	case errors.Is(err, weddingdomain.ErrCodeNotFound):
		writeError(w, http.StatusNotFound, "code_not_found", "rsvp code not found")
	case errors.Is(err, rsvpdomain.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "session_not_found", "rsvp session not found")
	case errors.Is(err, guestdomain.ErrGuestNotFound):
		writeError(w, http.StatusNotFound, "guest_not_found", "guest not found")
	case errors.Is(err, rsvpdomain.ErrAttendanceRequired):
		writeError(w, http.StatusBadRequest, "attendance_required", "an attendance answer is required")
	case errors.Is(err, rsvpdomain.ErrInvalidTransition):
		writeError(w, http.StatusConflict, "invalid_transition", "action not allowed in the current step")
	default:
		h.log.InternalError(op+": failed", err, "ref", ref)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}
