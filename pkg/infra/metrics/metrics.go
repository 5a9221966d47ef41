package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var (
	// Latency buckets in milliseconds; generation calls dominate the tail.
	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000,
	}

	RequestTotal = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "askroom_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	RequestLatency = promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "askroom_latency_ms",
			Help:    "Request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"path"},
	)

	PipelineStageLatency = promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "askroom_pipeline_stage_latency_ms",
			Help:    "Question pipeline stage latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"stage"}, // embedding, retrieval, generation, persistence
	)

	QuestionsCreatedTotal = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "askroom_questions_created_total",
			Help: "Total number of questions persisted",
		},
		[]string{"answered"},
	)
)

func Initialize() {
	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
}
