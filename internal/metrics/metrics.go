// Package metrics defines the Prometheus metrics of the estimation service.
package metrics

import (
	"strconv"
	"time"

	"appraiser/internal/estimate"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors of the service.
type Metrics struct {
	EstimatesTotal  *prometheus.CounterVec   // Estimates produced, by model
	EstimatePrice   *prometheus.HistogramVec // Distribution of estimated prices, by model
	EstimateLatency prometheus.Histogram     // Engine call duration in seconds
	RequestsTotal   *prometheus.CounterVec   // HTTP requests, by route and status code
}

// NewWithRegistry creates metrics registered on registerer (useful for testing).
func NewWithRegistry(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)
	return &Metrics{
		EstimatesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "estimates_total",
			Help: "Total number of price estimates produced",
		}, []string{"model"}),
		EstimatePrice: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "estimate_price",
			Help:    "Distribution of estimated prices",
			Buckets: prometheus.ExponentialBuckets(50000, 1.5, 12),
		}, []string{"model"}),
		EstimateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "estimate_latency_seconds",
			Help:    "Estimation engine latency in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"route", "code"}),
	}
}

// ObserveEstimates records one engine call returning preds after elapsed.
// A nil receiver is a no-op so callers can run without metrics.
func (m *Metrics) ObserveEstimates(elapsed time.Duration, preds ...estimate.Prediction) {
	if m == nil {
		return
	}
	m.EstimateLatency.Observe(elapsed.Seconds())
	for _, p := range preds {
		m.EstimatesTotal.WithLabelValues(p.Kind.Slug()).Inc()
		m.EstimatePrice.WithLabelValues(p.Kind.Slug()).Observe(p.Price)
	}
}

// ObserveRequest counts a finished HTTP request.
func (m *Metrics) ObserveRequest(route string, code int) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
}
