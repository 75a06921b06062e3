package handler

import (
	"errors"
	"net/http"
	"strings"

	guestdomain "wedding-rsvp-go/internal/domain/guest"

	"github.com/go-chi/chi/v5"
)

type importPreviewRequest struct {
	CSV string `json:"csv"`
}

type importPreviewResponse struct {
	Columns  []string                  `json:"columns"`
	Mapping  guestdomain.ColumnMapping `json:"mapping"`
	RowCount int                       `json:"rowCount"`
}

type importConfirmRequest struct {
	CSV     string                    `json:"csv"`
	Mapping guestdomain.ColumnMapping `json:"mapping"`
}

type importConfirmResponse struct {
	Imported int             `json:"imported"`
	Guests   []guestResponse `json:"guests"`
}

// PreviewImport parses an uploaded CSV and proposes a column mapping. Nothing
// is written; the caller confirms (possibly after adjusting the mapping) in a
// second request.
func (h *Handlers) PreviewImport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "wedding_id")

	var req importPreviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if _, err := h.Weddings.GetWedding(r.Context(), id); err != nil {
		h.writeGuestError(w, err, id, "imports.preview")
		return
	}

	columns, rows, err := guestdomain.ParseCSV(strings.NewReader(req.CSV))
	if err != nil {
		h.writeImportError(w, err, id, "imports.preview")
		return
	}

	writeJSON(w, http.StatusOK, importPreviewResponse{
		Columns:  columns,
		Mapping:  guestdomain.AutoMapColumns(columns),
		RowCount: len(rows),
	})
}

func (h *Handlers) ConfirmImport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "wedding_id")

	var req importConfirmRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if _, err := h.Weddings.GetWedding(r.Context(), id); err != nil {
		h.writeGuestError(w, err, id, "imports.confirm")
		return
	}

	_, rows, err := guestdomain.ParseCSV(strings.NewReader(req.CSV))
	if err != nil {
		h.writeImportError(w, err, id, "imports.confirm")
		return
	}

	imported, err := h.Guests.ImportGuests(r.Context(), id, rows, req.Mapping)
	if err != nil {
		h.writeImportError(w, err, id, "imports.confirm")
		return
	}

	writeJSON(w, http.StatusCreated, importConfirmResponse{
		Imported: len(imported),
		Guests:   toGuestResponses(imported),
	})
}

func (h *Handlers) writeImportError(w http.ResponseWriter, err error, weddingID, op string) {
	switch {
	case errors.Is(err, guestdomain.ErrNoDataRows):
		writeError(w, http.StatusBadRequest, "no_data", "no data found in file")
	case errors.Is(err, guestdomain.ErrMappingRequired):
		writeError(w, http.StatusBadRequest, "mapping_required", "please map at least first name or last name")
	case errors.Is(err, guestdomain.ErrNoImportableRows):
		writeError(w, http.StatusBadRequest, "no_valid_guests", "no valid guests found")
	case errors.Is(err, guestdomain.ErrUnparseableFile):
		h.log.BusinessError(op+": unparseable file", err, "wedding_id", weddingID)
		writeError(w, http.StatusBadRequest, "unparseable_file", "error parsing file")
	default:
		h.log.InternalError(op+": failed", err, "wedding_id", weddingID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}
