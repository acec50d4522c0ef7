package graph

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts root operations and dataloader batches. A nil *Metrics
// records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	batchSize  *prometheus.HistogramVec
}

func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Root query and mutation fields resolved",
			},
			[]string{"operation", "kind", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_seconds",
				Help:      "Time spent resolving root fields",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation", "kind"},
		),
		batchSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "loader_batch_size",
				Help:      "Keys per dataloader batch",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
			},
			[]string{"loader"},
		),
	}
	m.Registry.MustRegister(m.operations, m.duration, m.batchSize)
	return m
}

func (m *Metrics) ObserveOperation(operation string, kind string, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.operations.WithLabelValues(operation, kind, outcome).Inc()
	m.duration.WithLabelValues(operation, kind).Observe(time.Since(start).Seconds())
}

func (m *Metrics) ObserveBatch(loader string, size int) {
	if m == nil {
		return
	}
	m.batchSize.WithLabelValues(loader).Observe(float64(size))
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
