package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	promNamespace = "observable_clock"
)

var (
	durationBuckets = []float64{0.001, 0.002, 0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1, 2, 5, 10}

	operationDurationHistogram = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: promNamespace,
		Name:      "operation_duration_seconds",
		Buckets:   durationBuckets,
	}, []string{"op", "name"})

	operationStatusCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: promNamespace,
		Name:      "operation_status",
	}, []string{"op", "status"})

	tickCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: promNamespace,
		Name:      "ticks_total",
		Help:      "Number of ticks emitted per activation source.",
	}, []string{"source"})

	activeActivationsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: promNamespace,
		Name:      "active_activations",
		Help:      "Number of currently active clock activations.",
	})
)

func TrackDuration(operation string) func() {
	return TrackNamedDuration(operation, "")
}

func TrackNamedDuration(operation, name string) func() {
	start := time.Now()
	return func() {
		operationDurationHistogram.WithLabelValues(operation, name).Observe(time.Since(start).Seconds())
	}
}

func TrackStatus(operation, status string) {
	operationStatusCounter.WithLabelValues(operation, status).Inc()
}

func TrackTick(source string) {
	tickCounter.WithLabelValues(source).Inc()
}

func TrackActivations(delta int) {
	activeActivationsGauge.Add(float64(delta))
}
