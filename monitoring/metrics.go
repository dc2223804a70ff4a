// Package monitoring provides Prometheus metrics for batch btrfind runs.
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FilesProcessed tracks the total number of files analyzed, by outcome.
	FilesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "btrfind_files_processed_total",
		Help: "Total number of files analyzed",
	}, []string{"status"})

	// AnalysisLatency tracks per-file Analyze() latency.
	AnalysisLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "btrfind_analysis_duration_seconds",
		Help:    "Per-file analysis latency in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
	}, []string{"content_type"})

	// RecordSizeDetected tracks the distribution of auto-detected record
	// sizes.
	RecordSizeDetected = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "btrfind_detected_record_size_bytes",
		Help:    "Distribution of auto-detected record sizes",
		Buckets: []float64{32, 64, 128, 256, 512, 1024},
	}, []string{"outcome"})

	// DetectionConfidence tracks the Size Detector's quality score.
	DetectionConfidence = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "btrfind_detection_confidence",
		Help:    "Size Detector quality score in [0, 1]",
		Buckets: prometheus.LinearBuckets(0, 0.1, 11),
	})

	// CorruptionDetected tracks the total number of files flagged corrupt.
	CorruptionDetected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "btrfind_corruption_detected_total",
		Help: "Total number of files flagged as corrupted",
	})

	// ExportOperations tracks export attempts by sink and format.
	ExportOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "btrfind_export_operations_total",
		Help: "Total export operations",
	}, []string{"sink", "format", "status"})

	// ExportLatency tracks export write latency by sink.
	ExportLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "btrfind_export_duration_seconds",
		Help:    "Export write latency in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
	}, []string{"sink"})

	// RetryAttempts tracks retry attempts for batch operations.
	RetryAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "btrfind_retry_attempts_total",
		Help: "Total retry attempts",
	}, []string{"operation", "status"})

	// CircuitBreakerState tracks circuit breaker state by name (0=closed,
	// 1=open, 2=half-open).
	CircuitBreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "btrfind_circuit_breaker_state",
		Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
	}, []string{"breaker"})

	// CircuitBreakerTrips tracks the number of times a breaker opened.
	CircuitBreakerTrips = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "btrfind_circuit_breaker_trips_total",
		Help: "Total number of circuit breaker trips",
	}, []string{"breaker"})

	// QueueDepth tracks the number of files waiting in the current batch
	// run's queue.
	QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "btrfind_batch_queue_depth",
		Help: "Number of files queued in the current batch run",
	})

	// ActiveWorkers tracks the number of workers currently processing a
	// file.
	ActiveWorkers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "btrfind_batch_active_workers",
		Help: "Number of batch workers currently processing a file",
	})
)

// RecordFileProcessed records the outcome of a single file's pipeline run.
func RecordFileProcessed(status string) {
	FilesProcessed.WithLabelValues(status).Inc()
}

// RecordAnalysisLatency records how long Analyze() took for a file.
func RecordAnalysisLatency(contentType string, duration time.Duration) {
	AnalysisLatency.WithLabelValues(contentType).Observe(duration.Seconds())
}

// RecordDetectedSize records a Size Detector outcome.
func RecordDetectedSize(outcome string, size int) {
	RecordSizeDetected.WithLabelValues(outcome).Observe(float64(size))
}

// RecordCorruption records a file flagged as corrupted.
func RecordCorruption() {
	CorruptionDetected.Inc()
}

// RecordExport records an export attempt.
func RecordExport(sink, format string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	ExportOperations.WithLabelValues(sink, format, status).Inc()
	ExportLatency.WithLabelValues(sink).Observe(duration.Seconds())
}

// RecordRetry records a retry attempt outcome.
func RecordRetry(operation string, success bool) {
	status := "failure"
	if success {
		status = "success"
	}
	RetryAttempts.WithLabelValues(operation, status).Inc()
}

// UpdateCircuitBreakerState updates the current state gauge for a breaker.
func UpdateCircuitBreakerState(breaker string, state int) {
	CircuitBreakerState.WithLabelValues(breaker).Set(float64(state))
}

// RecordCircuitBreakerTrip increments the trip counter for a breaker.
func RecordCircuitBreakerTrip(breaker string) {
	CircuitBreakerTrips.WithLabelValues(breaker).Inc()
}

// UpdateQueueDepth sets the current batch queue depth.
func UpdateQueueDepth(depth int) {
	QueueDepth.Set(float64(depth))
}

// UpdateActiveWorkers sets the current active worker count.
func UpdateActiveWorkers(count int) {
	ActiveWorkers.Set(float64(count))
}
