package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Storage Metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Duration of storage operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "backend"},
	)

	// Diary Metrics
	DiaryActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diary_actions_total",
			Help: "Total number of diary state transitions",
		},
		[]string{"action"}, // toggle_task, adjust_counter, add_photo, ...
	)

	SaveFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "diary_save_failures_total",
			Help: "Saves that failed and were reported as notices",
		},
	)

	// Error Metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by type",
		},
		[]string{"type", "reason"},
	)

	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "Last sampled CPU usage",
		},
	)
)

// TrackDBOperation times a storage operation; call ObserveDuration when done
func TrackDBOperation(operation, backend string) *prometheus.Timer {
	return prometheus.NewTimer(DBOperationDuration.WithLabelValues(operation, backend))
}

func TrackDiaryAction(action string) {
	DiaryActionsTotal.WithLabelValues(action).Inc()
}

func TrackError(errorType, reason string) {
	ErrorsTotal.WithLabelValues(errorType, reason).Inc()
}
