package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"slot-engine/internal/core/domain"
	"slot-engine/internal/core/port"
)

type errorResponse struct {
	Error  string              `json:"error"`
	Reload bool                `json:"reload,omitempty"`
	Failed []domain.EntryRef   `json:"failed,omitempty"`
	Result *port.ReorderResult `json:"result,omitempty"`
}

func (h *Handler) handleCompose(w http.ResponseWriter, r *http.Request) {
	area, ok := parseArea(w, r)
	if !ok {
		return
	}
	headline, err := h.headlines.Compose(r.Context(), area)
	if err != nil {
		h.writeError(w, err, nil)
		return
	}
	h.writeJSON(w, http.StatusOK, headline)
}

type reorderBody struct {
	Version int64             `json:"version"`
	Order   []domain.EntryRef `json:"order"`
}

// handleReorder persists a dragged order. On any failure the body carries
// reload=true and the operator UI must refetch the headline.
func (h *Handler) handleReorder(w http.ResponseWriter, r *http.Request) {
	area, ok := parseArea(w, r)
	if !ok {
		return
	}
	var body reorderBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	res, err := h.headlines.Reorder(r.Context(), port.ReorderRequest{Area: area, Version: body.Version, Order: body.Order})
	if err != nil {
		h.writeError(w, err, res)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

type placeBody struct {
	Ref  domain.EntryRef `json:"ref"`
	Slot int             `json:"slot"`
}

func (h *Handler) handlePlace(w http.ResponseWriter, r *http.Request) {
	area, ok := parseArea(w, r)
	if !ok {
		return
	}
	var body placeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	headline, err := h.headlines.Place(r.Context(), port.PlaceRequest{Area: area, Ref: body.Ref, Slot: body.Slot})
	if err != nil {
		h.writeError(w, err, nil)
		return
	}
	h.writeJSON(w, http.StatusOK, headline)
}

func (h *Handler) handleRemove(w http.ResponseWriter, r *http.Request) {
	area, ok := parseArea(w, r)
	if !ok {
		return
	}
	ref, err := entryRef(r)
	if err != nil {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}
	if err = h.headlines.Remove(r.Context(), area, ref); err != nil {
		h.writeError(w, err, nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseArea(w http.ResponseWriter, r *http.Request) (domain.Area, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, "area"))
	area := domain.Area(n)
	if err != nil || !area.Valid() {
		http.Error(w, domain.ErrInvalidArea.Error(), http.StatusBadRequest)
		return 0, false
	}
	return area, true
}

// writeError maps operator-facing domain errors to status codes.
func (h *Handler) writeError(w http.ResponseWriter, err error, res *port.ReorderResult) {
	resp := errorResponse{Error: err.Error(), Result: res}
	if res != nil {
		resp.Reload = res.Reload
	}

	var perr *domain.PersistenceError
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &perr):
		resp.Reload = true
		resp.Failed = perr.Failed()
	case errors.Is(err, domain.ErrInvalidArea),
		errors.Is(err, domain.ErrInvalidOrder),
		errors.Is(err, domain.ErrInvalidKind),
		errors.Is(err, domain.ErrSlotOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrSlotOccupied),
		errors.Is(err, domain.ErrEditInProgress):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrVersionConflict):
		status = http.StatusPreconditionFailed
		resp.Reload = true
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("headline edit failed", slog.Any("error", err))
	}
	h.writeJSON(w, status, resp)
}
