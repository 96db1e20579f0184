package metrics

import (
	"testing"
	"time"

	"appraiser/internal/estimate"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegistry(registry)
	require.NotNil(t, m)

	// a second registration on the same registry must panic
	assert.Panics(t, func() { NewWithRegistry(registry) })
}

func TestObserveEstimates(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	m.ObserveEstimates(time.Millisecond,
		estimate.Prediction{Kind: estimate.KindLinear, Price: 423250},
		estimate.Prediction{Kind: estimate.KindLinear, Price: 423250},
		estimate.Prediction{Kind: estimate.KindEnsemble, Price: 500000},
	)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.EstimatesTotal.WithLabelValues("linear")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EstimatesTotal.WithLabelValues("ensemble")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.EstimatesTotal.WithLabelValues("forest")))
}

func TestObserveRequest(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	m.ObserveRequest("predictions", 200)
	m.ObserveRequest("predictions", 200)
	m.ObserveRequest("predictions", 422)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("predictions", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("predictions", "422")))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveEstimates(time.Second, estimate.Prediction{})
		m.ObserveRequest("x", 500)
	})
}
