// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "route", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// ExchangeDuration tracks round trips to the remote chat endpoint.
	ExchangeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chat_exchange_duration_seconds",
			Help:    "Chat exchange duration in seconds",
			Buckets: []float64{.25, .5, 1, 2, 5, 10, 20, 30, 60, 120},
		},
		[]string{"outcome"},
	)

	// ExchangesRejected counts sends refused because another exchange was in flight.
	ExchangesRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_exchanges_rejected_total",
			Help: "Sends rejected while another exchange was in flight",
		},
	)

	// DocumentAnalyses counts document uploads by outcome.
	DocumentAnalyses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "document_analyses_total",
			Help: "Document analyses by outcome",
		},
		[]string{"outcome"},
	)

	// StoreWriteFailures counts collection or preference writes that failed.
	StoreWriteFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "store_write_failures_total",
			Help: "Failed writes to the conversation store",
		},
	)

	// ConversationsTotal tracks conversations created, by origin.
	ConversationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conversations_total",
			Help: "Total conversations created",
		},
		[]string{"origin"},
	)

	// MessagesTotal tracks messages appended, by role.
	MessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_total",
			Help: "Total messages appended",
		},
		[]string{"role"},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, route, status string, duration float64) {
	RequestDuration.WithLabelValues(method, route, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, route, status).Inc()
}

// RecordExchange records the outcome ("success" or "error") of one exchange.
func RecordExchange(outcome string, duration float64) {
	ExchangeDuration.WithLabelValues(outcome).Observe(duration)
}
