package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ProviderErrors  *prometheus.CounterVec
	QuotesTotal     *prometheus.CounterVec
	RateFetches     *prometheus.CounterVec
}

// NewMetrics creates and registers Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shipquote_requests_total",
				Help: "Total number of HTTP requests by endpoint and status",
			},
			[]string{"endpoint", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shipquote_request_duration_seconds",
				Help:    "Request duration in seconds by endpoint",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		ProviderErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shipquote_provider_errors_total",
				Help: "Total upstream provider errors by provider and error type",
			},
			[]string{"provider", "error_type"},
		),
		QuotesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shipquote_quotes_total",
				Help: "Total resolved quotes by provenance and accuracy",
			},
			[]string{"provenance", "accuracy"},
		),
		RateFetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shipquote_rate_fetches_total",
				Help: "Total exchange rate table fetches by outcome",
			},
			[]string{"outcome"},
		),
	}
}

// RecordRequest records a request metric.
func (m *Metrics) RecordRequest(endpoint, status string, duration float64) {
	m.RequestsTotal.WithLabelValues(endpoint, status).Inc()
	m.RequestDuration.WithLabelValues(endpoint).Observe(duration)
}

// RecordProviderError records an upstream provider error metric.
func (m *Metrics) RecordProviderError(provider, errorType string) {
	m.ProviderErrors.WithLabelValues(provider, errorType).Inc()
}

// RecordQuote records a resolved quote metric.
func (m *Metrics) RecordQuote(provenance, accuracy string) {
	m.QuotesTotal.WithLabelValues(provenance, accuracy).Inc()
}

// RecordRateFetch records an exchange rate fetch outcome.
func (m *Metrics) RecordRateFetch(outcome string) {
	m.RateFetches.WithLabelValues(outcome).Inc()
}
