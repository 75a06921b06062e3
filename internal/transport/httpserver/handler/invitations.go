package handler

import (
	"errors"
	"net/http"

	guestdomain "wedding-rsvp-go/internal/domain/guest"
	weddingdomain "wedding-rsvp-go/internal/domain/wedding"

	"github.com/go-chi/chi/v5"
)

type sendInvitationsRequest struct {
	Channel  string   `json:"channel"`
	GuestIDs []string `json:"guestIds"`
}

type sendInvitationsResponse struct {
	Sent    int    `json:"sent"`
	Channel string `json:"channel"`
}

// SendInvitations stamps delivery markers for the targeted guests and hands
// the rendered message to the (simulated) sender. Omitting guestIds targets
// every guest with the relevant contact field. Guests already sent to are
// re-sent; the previous timestamp is overwritten, never a blocker.
func (h *Handlers) SendInvitations(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "wedding_id")

	var req sendInvitationsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	wedding, err := h.Weddings.GetWedding(r.Context(), id)
	if err != nil {
		h.writeGuestError(w, err, id, "invitations.send")
		return
	}

	channel := guestdomain.Channel(req.Channel)
	template := wedding.EmailTemplate.Body
	if channel == guestdomain.ChannelSMS {
		template = wedding.SMSTemplate.Body
	}

	message := func(g guestdomain.Guest) string {
		return weddingdomain.Render(template, wedding, weddingdomain.Recipient{
			Name:      g.Name,
			FirstName: g.FirstName,
		})
	}

	sent, err := h.Guests.SendInvitations(r.Context(), id, channel, req.GuestIDs, message)
	if err != nil {
		if errors.Is(err, guestdomain.ErrInvalidChannel) {
			writeError(w, http.StatusBadRequest, "invalid_channel", "channel must be email or sms")
			return
		}
		h.writeGuestError(w, err, id, "invitations.send")
		return
	}

	writeJSON(w, http.StatusOK, sendInvitationsResponse{Sent: sent, Channel: string(channel)})
}

type templatePreviewResponse struct {
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body"`
}

// PreviewTemplate renders a channel's template for a specific guest, or for a
// placeholder recipient when no guest is given.
func (h *Handlers) PreviewTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "wedding_id")

	wedding, err := h.Weddings.GetWedding(r.Context(), id)
	if err != nil {
		h.writeGuestError(w, err, id, "invitations.preview")
		return
	}

	rcpt := weddingdomain.Recipient{}
	if guestID := r.URL.Query().Get("guest_id"); guestID != "" {
		g, err := h.Guests.GetGuest(r.Context(), id, guestID)
		if err != nil {
			h.writeGuestError(w, err, id, "invitations.preview")
			return
		}
		rcpt = weddingdomain.Recipient{Name: g.Name, FirstName: g.FirstName}
	}

	channel := r.URL.Query().Get("channel")
	switch channel {
	case "", string(guestdomain.ChannelEmail):
		writeJSON(w, http.StatusOK, templatePreviewResponse{
			Subject: weddingdomain.Render(wedding.EmailTemplate.Subject, wedding, rcpt),
			Body:    weddingdomain.Render(wedding.EmailTemplate.Body, wedding, rcpt),
		})
	case string(guestdomain.ChannelSMS):
		writeJSON(w, http.StatusOK, templatePreviewResponse{
			Body: weddingdomain.Render(wedding.SMSTemplate.Body, wedding, rcpt),
		})
	default:
		writeError(w, http.StatusBadRequest, "invalid_channel", "channel must be email or sms")
	}
}
