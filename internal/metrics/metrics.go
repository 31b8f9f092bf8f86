// Package metrics defines Prometheus metrics for docgraph.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "docgraph_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docgraph_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docgraph_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	IngestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "docgraph_ingest_duration_seconds",
			Help:    "Corpus scan duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)

	DocumentCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "docgraph_documents_total",
			Help: "Total indexed document count",
		},
	)

	DependencyCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "docgraph_dependencies_total",
			Help: "Total dependency edge count",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		IngestDuration,
		DocumentCount, DependencyCount,
	)
}
