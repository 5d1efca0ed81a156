package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lovecontract",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lovecontract",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"method", "endpoint"},
	)

	ContractsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lovecontract",
			Name:      "contracts_created_total",
			Help:      "Contracts created",
		},
	)

	SignaturesRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lovecontract",
			Name:      "signatures_recorded_total",
			Help:      "Signatures recorded by role",
		},
		[]string{"role"},
	)

	ContractsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lovecontract",
			Name:      "contracts_completed_total",
			Help:      "Contracts that reached the completed state",
		},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lovecontract",
			Name:      "store_errors_total",
			Help:      "Failed store operations by operation",
		},
		[]string{"operation"},
	)

	WatchersActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "lovecontract",
			Name:      "watchers_active",
			Help:      "Open websocket subscriptions",
		},
	)
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
