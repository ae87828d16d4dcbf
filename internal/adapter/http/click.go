package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"slot-engine/internal/core/domain"
)

func (h *Handler) handleBeginSession(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusCreated, map[string]string{"session_id": h.engagement.BeginSession()})
}

func (h *Handler) handleEndSession(w http.ResponseWriter, r *http.Request) {
	h.engagement.EndSession(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// handleView records a view for the session in the X-Session-ID header.
// It answers 204 whether or not the view was counted.
func (h *Handler) handleView(w http.ResponseWriter, r *http.Request) {
	unit, ok := unitRef(r)
	if !ok {
		http.Error(w, "invalid unit", http.StatusBadRequest)
		return
	}
	h.engagement.RecordView(r.Context(), r.Header.Get(SessionHeader), unit)
	w.WriteHeader(http.StatusNoContent)
}

// handleClick counts a click. Like views, it always answers 204.
func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	unit, ok := unitRef(r)
	if !ok {
		http.Error(w, "invalid unit", http.StatusBadRequest)
		return
	}
	h.engagement.RecordClick(r.Context(), unit)
	w.WriteHeader(http.StatusNoContent)
}

func unitRef(r *http.Request) (domain.EntryRef, bool) {
	ref, err := entryRef(r)
	if err != nil || !ref.Kind.IsUnit() {
		return domain.EntryRef{}, false
	}
	return ref, true
}

func entryRef(r *http.Request) (domain.EntryRef, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return domain.EntryRef{}, err
	}
	return domain.EntryRef{Kind: domain.EntryKind(chi.URLParam(r, "kind")), ID: id}, nil
}
