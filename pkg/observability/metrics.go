package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Constants representing success or failure states as strings for the metrics labels.
const (
	Completed = "true"  // Represents successful operation
	Failed    = "false" // Represents failed operation
)

// Metrics definitions for the filesystem operations.

// GetFsStatsTotal counts the total number of GetFsStats calls.
// It uses a label "functionStatus" to differentiate between successful and failed calls.
var (
	GetFsStatsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fsutil_get_fs_stats_total",
			Help: "Total number of GetFsStats calls"},
		[]string{"functionStatus"},
	)

	// GetFsStatsDuration tracks the duration of GetFsStats calls.
	// It also uses a "functionStatus" label to capture whether the call succeeded or failed.
	GetFsStatsDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fsutil_get_fs_stats_duration_seconds",
			Help:    "Duration of GetFsStats calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"functionStatus"},
	)

	// EnsureDirTotal counts the total number of EnsureDir calls.
	EnsureDirTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fsutil_ensure_dir_total",
			Help: "Total number of EnsureDir calls",
		},
		[]string{"functionStatus"},
	)

	// EnsureDirDuration tracks the duration of EnsureDir calls.
	EnsureDirDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fsutil_ensure_dir_duration_seconds",
			Help:    "Duration of EnsureDir calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"functionStatus"},
	)

	// EnsureAndStatTotal counts the total number of EnsureAndStat calls.
	EnsureAndStatTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fsutil_ensure_and_stat_total",
			Help: "Total number of EnsureAndStat calls",
		},
		[]string{"functionStatus"},
	)

	// EnsureAndStatDuration tracks the duration of EnsureAndStat calls.
	EnsureAndStatDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fsutil_ensure_and_stat_duration_seconds",
			Help:    "Duration of EnsureAndStat calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"functionStatus"},
	)
)

var (
	// DirectoriesCreatedTotal counts the directory trees created by EnsureDir.
	DirectoriesCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fsutil_directories_created_total",
			Help: "Total number of directory trees created",
		},
	)

	// VolumeAvailableMB reports the last observed available space, in MiB,
	// for each queried path.
	VolumeAvailableMB = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fsutil_volume_available_megabytes",
			Help: "Available space on the filesystem holding path, in MiB",
		},
		[]string{"path"},
	)
)

// The init function registers all the defined Prometheus metrics.
func init() {
	prometheus.MustRegister(GetFsStatsTotal)
	prometheus.MustRegister(GetFsStatsDuration)
	prometheus.MustRegister(EnsureDirTotal)
	prometheus.MustRegister(EnsureDirDuration)
	prometheus.MustRegister(EnsureAndStatTotal)
	prometheus.MustRegister(EnsureAndStatDuration)
	prometheus.MustRegister(DirectoriesCreatedTotal)
	prometheus.MustRegister(VolumeAvailableMB)
}

// RecordMetrics function is a helper to encapsulate metrics storage across function calls.
// It increments the total counter and observes the duration of the operation.
func RecordMetrics(total *prometheus.CounterVec, duration *prometheus.HistogramVec, functionStatus string, start time.Time) {
	total.WithLabelValues(functionStatus).Inc()                                   // Increment the total metric for the operation
	duration.WithLabelValues(functionStatus).Observe(time.Since(start).Seconds()) // Record the duration of the operation
}

// Status maps an operation's error to its functionStatus label.
func Status(err error) string {
	if err != nil {
		return Failed
	}
	return Completed
}

// WriteTextfile writes every registered metric to filename in the Prometheus
// text exposition format, for collection by a textfile collector.
func WriteTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, prometheus.DefaultGatherer)
}
