// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FitQueries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "concierge_fit_queries_total",
			Help: "Total number of fit assessment queries",
		},
	)

	FitDefaultedInputs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "concierge_fit_defaulted_inputs_total",
			Help: "Fit query inputs that fell back to the default measurement",
		},
		[]string{"dimension"},
	)

	SizeConversions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "concierge_size_conversions_total",
			Help: "Total number of size conversion queries by match type",
		},
		[]string{"match_type"},
	)

	ChatEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "concierge_chat_events_total",
			Help: "Total number of chat events processed by event type",
		},
		[]string{"event_type"},
	)

	OrderLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "concierge_order_lookups_total",
			Help: "Total number of order lookups by outcome",
		},
		[]string{"outcome"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "concierge_chat_sessions_active",
			Help: "Number of live chat sessions",
		},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "concierge_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"route"},
	)
)
