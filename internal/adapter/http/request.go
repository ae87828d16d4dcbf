package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"slot-engine/internal/core/domain"
)

type adView struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Media   string `json:"media"`
	LinkURL string `json:"link_url,omitempty"`
}

// handleSelectAds returns the ads eligible for a placement. Query
// parameters: device (mobile|desktop), page (home|category|detail|other),
// category and news. Unknown devices and pages fall back to "all" and
// "other". A catalog failure renders an empty list.
func (h *Handler) handleSelectAds(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := domain.SelectRequest{
		Placement: chi.URLParam(r, "code"),
		Device:    parseDevice(q.Get("device")),
		Page:      domain.PageContext{Type: parsePage(q.Get("page"))},
	}
	if c := strings.TrimSpace(q.Get("category")); c != "" {
		req.Page.Category = &c
	}
	if n := q.Get("news"); n != "" {
		id, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			http.Error(w, "invalid news id", http.StatusBadRequest)
			return
		}
		req.Page.NewsID = &id
	}

	ads, err := h.placements.SelectAds(r.Context(), req)
	if err != nil {
		h.logger.Error("select ads error", slog.String("placement", req.Placement), slog.Any("error", err))
		ads = nil
	}

	resp := make([]adView, 0, len(ads))
	for _, ad := range ads {
		resp = append(resp, adView{ID: ad.ID, Name: ad.Name, Kind: string(ad.Kind), Media: ad.Media, LinkURL: ad.LinkURL})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func parseDevice(s string) domain.DeviceType {
	switch d := domain.DeviceType(strings.ToLower(s)); d {
	case domain.DeviceMobile, domain.DeviceDesktop:
		return d
	}
	return domain.DeviceAll
}

func parsePage(s string) domain.PageType {
	switch p := domain.PageType(strings.ToLower(s)); p {
	case domain.PageHome, domain.PageCategory, domain.PageDetail:
		return p
	}
	return domain.PageOther
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
