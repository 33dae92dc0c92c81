package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "hris_"

	ResultSuccess = "success"
	ResultError   = "error"
	ResultSkipped = "skipped"
)

var (
	registerOnce sync.Once

	cronRunsTotal     *prometheus.CounterVec
	cronRunLatency    *prometheus.HistogramVec
	calculationsTotal *prometheus.CounterVec
	exportsTotal      *prometheus.CounterVec
	exportLatency     *prometheus.HistogramVec
	lopDeductions     prometheus.Histogram
)

// Init registers the collectors with the default registry. It is safe to
// call more than once.
func Init() {
	registerOnce.Do(func() {
		cronRunsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "cron_runs_total",
				Help: "Total cron job runs by job and result",
			},
			[]string{"job", "result"},
		)
		cronRunLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "cron_run_latency_seconds",
				Help:    "Cron job latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"job"},
		)
		calculationsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "calculations_total",
				Help: "Total calendar and payroll calculations by operation and result",
			},
			[]string{"operation", "result"},
		)
		exportsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "calendar_exports_total",
				Help: "Total month calendar exports by format and result",
			},
			[]string{"format", "result"},
		)
		exportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "calendar_export_latency_seconds",
				Help:    "Month calendar export latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format"},
		)
		lopDeductions = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "lop_deduction_amount",
				Help:    "Distribution of calculated LOP amounts",
				Buckets: prometheus.ExponentialBuckets(1000, 2, 10),
			},
		)

		prometheus.MustRegister(
			cronRunsTotal,
			cronRunLatency,
			calculationsTotal,
			exportsTotal,
			exportLatency,
			lopDeductions,
		)
	})
}

// ObserveCronRun records one job execution.
func ObserveCronRun(job, result string, duration time.Duration) {
	if result == "" {
		result = ResultSuccess
	}
	if cronRunsTotal != nil {
		cronRunsTotal.WithLabelValues(job, result).Inc()
	}
	if cronRunLatency != nil {
		cronRunLatency.WithLabelValues(job).Observe(duration.Seconds())
	}
}

// IncCalculation counts a calculation by operation name.
func IncCalculation(operation string, err error) {
	if calculationsTotal == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	calculationsTotal.WithLabelValues(operation, result).Inc()
}

// ObserveExport records a calendar export.
func ObserveExport(format, result string, duration time.Duration) {
	if format == "" {
		format = "unknown"
	}
	if result == "" {
		result = ResultSuccess
	}
	if exportsTotal != nil {
		exportsTotal.WithLabelValues(format, result).Inc()
	}
	if exportLatency != nil {
		exportLatency.WithLabelValues(format).Observe(duration.Seconds())
	}
}

// ObserveLOPAmount records a calculated LOP amount.
func ObserveLOPAmount(amount float64) {
	if lopDeductions != nil {
		lopDeductions.Observe(amount)
	}
}
