package handler

import (
	"errors"
	"net/http"

	weddingdomain "wedding-rsvp-go/internal/domain/wedding"

	"github.com/go-chi/chi/v5"
)

func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) ListWeddings(w http.ResponseWriter, r *http.Request) {
	weddings, err := h.Weddings.ListWeddings(r.Context())
	if err != nil {
		h.log.InternalError("weddings.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	result := make([]weddingResponse, 0, len(weddings))
	for i := range weddings {
		result = append(result, toWeddingResponse(&weddings[i]))
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) CreateWedding(w http.ResponseWriter, r *http.Request) {
	result, err := h.Weddings.CreateWedding(r.Context())
	if err != nil {
		if errors.Is(err, weddingdomain.ErrCodeGenerationFailed) {
			h.log.BusinessError("weddings.create: code generation exhausted", err)
			writeError(w, http.StatusConflict, "code_generation_failed", "could not generate a unique rsvp code")
			return
		}
		h.log.InternalError("weddings.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toWeddingResponse(result))
}

func (h *Handlers) GetWedding(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "wedding_id")

	result, err := h.Weddings.GetWedding(r.Context(), id)
	if err != nil {
		if errors.Is(err, weddingdomain.ErrWeddingNotFound) {
			writeError(w, http.StatusNotFound, "wedding_not_found", "wedding not found")
			return
		}
		h.log.InternalError("weddings.get: get failed", err, "wedding_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toWeddingResponse(result))
}

type updateWeddingRequest struct {
	BrideName    *string `json:"brideName"`
	GroomName    *string `json:"groomName"`
	Date         *string `json:"date"`
	Time         *string `json:"time"`
	VenueName    *string `json:"venueName"`
	VenueAddress *string `json:"venueAddress"`
	Theme        *string `json:"theme"`
}

func (h *Handlers) UpdateWedding(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "wedding_id")

	var req updateWeddingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	result, err := h.Weddings.UpdateDetails(r.Context(), id, weddingdomain.DetailsUpdate{
		BrideName:    req.BrideName,
		GroomName:    req.GroomName,
		Date:         req.Date,
		Time:         req.Time,
		VenueName:    req.VenueName,
		VenueAddress: req.VenueAddress,
		Theme:        req.Theme,
	})
	if err != nil {
		switch {
		case errors.Is(err, weddingdomain.ErrWeddingNotFound):
			writeError(w, http.StatusNotFound, "wedding_not_found", "wedding not found")
		case errors.Is(err, weddingdomain.ErrInvalidDate):
			writeError(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD")
		case errors.Is(err, weddingdomain.ErrUnknownTheme):
			writeError(w, http.StatusBadRequest, "unknown_theme", "unknown theme name")
		default:
			h.log.InternalError("weddings.update: update failed", err, "wedding_id", id)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toWeddingResponse(result))
}

type updateCustomizationRequest struct {
	PrimaryColor    *string `json:"primaryColor"`
	SecondaryColor  *string `json:"secondaryColor"`
	BGStart         *string `json:"bgStart"`
	BGEnd           *string `json:"bgEnd"`
	BGPhoto         *string `json:"bgPhoto"`
	FontStyle       *string `json:"fontStyle"`
	HeaderText      *string `json:"headerText"`
	FooterText      *string `json:"footerText"`
	RSVPTitle       *string `json:"rsvpTitle"`
	RSVPSubtitle    *string `json:"rsvpSubtitle"`
	ThankYouTitle   *string `json:"thankYouTitle"`
	ThankYouMessage *string `json:"thankYouMessage"`
}

func (h *Handlers) UpdateCustomization(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "wedding_id")

	var req updateCustomizationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	result, err := h.Weddings.UpdateCustomization(r.Context(), id, weddingdomain.CustomizationUpdate{
		PrimaryColor:    req.PrimaryColor,
		SecondaryColor:  req.SecondaryColor,
		BGStart:         req.BGStart,
		BGEnd:           req.BGEnd,
		BGPhoto:         req.BGPhoto,
		FontStyle:       req.FontStyle,
		HeaderText:      req.HeaderText,
		FooterText:      req.FooterText,
		RSVPTitle:       req.RSVPTitle,
		RSVPSubtitle:    req.RSVPSubtitle,
		ThankYouTitle:   req.ThankYouTitle,
		ThankYouMessage: req.ThankYouMessage,
	})
	if err != nil {
		if errors.Is(err, weddingdomain.ErrWeddingNotFound) {
			writeError(w, http.StatusNotFound, "wedding_not_found", "wedding not found")
			return
		}
		h.log.InternalError("weddings.customize: update failed", err, "wedding_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toWeddingResponse(result))
}

type updateEmailTemplateRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (h *Handlers) UpdateEmailTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "wedding_id")

	var req updateEmailTemplateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	result, err := h.Weddings.UpdateEmailTemplate(r.Context(), id, req.Subject, req.Body)
	if err != nil {
		if errors.Is(err, weddingdomain.ErrWeddingNotFound) {
			writeError(w, http.StatusNotFound, "wedding_not_found", "wedding not found")
			return
		}
		h.log.InternalError("weddings.email_template: update failed", err, "wedding_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toWeddingResponse(result))
}

type updateSMSTemplateRequest struct {
	Body string `json:"body"`
}

func (h *Handlers) UpdateSMSTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "wedding_id")

	var req updateSMSTemplateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	result, err := h.Weddings.UpdateSMSTemplate(r.Context(), id, req.Body)
	if err != nil {
		if errors.Is(err, weddingdomain.ErrWeddingNotFound) {
			writeError(w, http.StatusNotFound, "wedding_not_found", "wedding not found")
			return
		}
		h.log.InternalError("weddings.sms_template: update failed", err, "wedding_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toWeddingResponse(result))
}

func (h *Handlers) DeleteWedding(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "wedding_id")

	if err := h.Weddings.DeleteWedding(r.Context(), id); err != nil {
		if errors.Is(err, weddingdomain.ErrWeddingNotFound) {
			writeError(w, http.StatusNotFound, "wedding_not_found", "wedding not found")
			return
		}
		h.log.InternalError("weddings.delete: delete failed", err, "wedding_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ActivateWedding(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "wedding_id")

	if err := h.Weddings.SetActive(r.Context(), id); err != nil {
		if errors.Is(err, weddingdomain.ErrWeddingNotFound) {
			writeError(w, http.StatusNotFound, "wedding_not_found", "wedding not found")
			return
		}
		h.log.InternalError("weddings.activate: activate failed", err, "wedding_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) GetActiveWedding(w http.ResponseWriter, r *http.Request) {
	result, err := h.Weddings.ActiveWedding(r.Context())
	if err != nil {
		if errors.Is(err, weddingdomain.ErrWeddingNotFound) {
			writeError(w, http.StatusNotFound, "no_active_wedding", "no active wedding")
			return
		}
		h.log.InternalError("weddings.active: get failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toWeddingResponse(result))
}

func (h *Handlers) ClearActiveWedding(w http.ResponseWriter, _ *http.Request) {
	h.Weddings.ClearActive()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListThemes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.Weddings.Themes())
}
