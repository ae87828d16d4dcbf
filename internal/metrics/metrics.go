// Package metrics holds the Prometheus collectors of the slot engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "slotengine"

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// AdDecisions counts targeting decisions per placement and reason.
	AdDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ad_decisions_total",
			Help:      "Targeting decisions by placement and reason",
		},
		[]string{"placement", "reason"},
	)

	TargetingDefaults = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "targeting_defaults_total",
			Help:      "Ads whose malformed targeting fields were defaulted",
		},
	)

	Engagements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "engagements_total",
			Help:      "View and click counting attempts by outcome",
		},
		[]string{"type", "kind", "status"},
	)

	SlotWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_writes_total",
			Help:      "Headline slot writes by entry kind and outcome",
		},
		[]string{"kind", "status"},
	)

	IntegrityWarnings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "headline_integrity_warnings_total",
			Help:      "Entries dropped while composing a headline",
		},
		[]string{"area", "problem"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Number of open engagement sessions",
		},
	)

	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Events handed to the message brokers",
		},
		[]string{"broker", "status"},
	)
)

// Status label values.
const (
	StatusOK        = "ok"
	StatusError     = "error"
	StatusDuplicate = "duplicate"
)
