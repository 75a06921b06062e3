package handler

import (
	"errors"
	"net/http"
	"strings"

	guestdomain "wedding-rsvp-go/internal/domain/guest"
	weddingdomain "wedding-rsvp-go/internal/domain/wedding"

	"github.com/go-chi/chi/v5"
)

type addGuestRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (h *Handlers) ListGuests(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "wedding_id")

	if _, err := h.Weddings.GetWedding(r.Context(), id); err != nil {
		h.writeGuestError(w, err, id, "guests.list")
		return
	}

	status := guestdomain.Status(strings.TrimSpace(r.URL.Query().Get("status")))
	guests, err := h.Guests.ListGuestsByStatus(r.Context(), id, status)
	if err != nil {
		h.writeGuestError(w, err, id, "guests.list")
		return
	}

	writeJSON(w, http.StatusOK, toGuestResponses(guests))
}

func (h *Handlers) AddGuest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "wedding_id")

	var req addGuestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if _, err := h.Weddings.GetWedding(r.Context(), id); err != nil {
		h.writeGuestError(w, err, id, "guests.add")
		return
	}

	result, err := h.Guests.AddGuest(r.Context(), id, req.FirstName, req.LastName, req.Email, req.Phone)
	if err != nil {
		if errors.Is(err, guestdomain.ErrNameRequired) {
			writeError(w, http.StatusBadRequest, "invalid_request", "first or last name is required")
			return
		}
		h.writeGuestError(w, err, id, "guests.add")
		return
	}

	writeJSON(w, http.StatusCreated, toGuestResponse(result))
}

func (h *Handlers) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "wedding_id")
	guestID := chi.URLParam(r, "guest_id")

	if err := h.Guests.DeleteGuest(r.Context(), id, guestID); err != nil {
		h.writeGuestError(w, err, id, "guests.delete")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) GuestStats(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "wedding_id")

	if _, err := h.Weddings.GetWedding(r.Context(), id); err != nil {
		h.writeGuestError(w, err, id, "guests.stats")
		return
	}

	stats, err := h.Guests.Stats(r.Context(), id)
	if err != nil {
		h.writeGuestError(w, err, id, "guests.stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *Handlers) writeGuestError(w http.ResponseWriter, err error, weddingID, op string) {
	switch {
	case errors.Is(err, weddingdomain.ErrWeddingNotFound):
		writeError(w, http.StatusNotFound, "wedding_not_found", "wedding not found")
	case errors.Is(err, guestdomain.ErrGuestNotFound):
		writeError(w, http.StatusNotFound, "guest_not_found", "guest not found")
	default:
		h.log.InternalError(op+": failed", err, "wedding_id", weddingID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}
