package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"slot-engine/internal/core/port"
)

// SessionHeader carries the visitor session on view requests.
const SessionHeader = "X-Session-ID"

// Handler is the inbound HTTP adapter. Visitor routes (placements,
// sessions, units) never expose counting or eligibility failures;
// operator routes (headlines) map domain errors to status codes.
type Handler struct {
	placements port.PlacementUseCase
	headlines  port.HeadlineUseCase
	engagement port.EngagementUseCase
	logger     *slog.Logger
	router     chi.Router
}

// NewHandler creates a handler with all routes configured on a new
// chi.Router.
func NewHandler(
	placements port.PlacementUseCase,
	headlines port.HeadlineUseCase,
	engagement port.EngagementUseCase,
	logger *slog.Logger,
) *Handler {
	h := &Handler{placements: placements, headlines: headlines, engagement: engagement, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(instrument)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/placements/{code}/ads", h.handleSelectAds)

		r.Post("/sessions", h.handleBeginSession)
		r.Delete("/sessions/{id}", h.handleEndSession)
		r.Post("/units/{kind}/{id}/view", h.handleView)
		r.Post("/units/{kind}/{id}/click", h.handleClick)

		r.Route("/headlines/{area}", func(r chi.Router) {
			r.Get("/", h.handleCompose)
			r.Put("/order", h.handleReorder)
			r.Post("/entries", h.handlePlace)
			r.Delete("/entries/{kind}/{id}", h.handleRemove)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
