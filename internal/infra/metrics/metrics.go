package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wayfare",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	sweepRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wayfare",
			Name:      "scheduler_sweep_runs_total",
			Help:      "Scheduler sweep executions by sweep and result.",
		},
		[]string{"sweep", "result"},
	)

	sweepProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wayfare",
			Name:      "scheduler_sweep_items_total",
			Help:      "Bookings processed by scheduler sweeps.",
		},
		[]string{"sweep", "result"},
	)

	sweepDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wayfare",
			Name:      "scheduler_sweep_duration_seconds",
			Help:      "Wall time of one scheduler sweep.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"sweep"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, sweepRuns, sweepProcessed, sweepDuration)
	})
}

func IncHTTP(method, route, status string) {
	httpRequests.WithLabelValues(method, route, status).Inc()
}

func IncSweepRun(sweep, result string) {
	sweepRuns.WithLabelValues(sweep, result).Inc()
}

func IncSweepItem(sweep, result string) {
	sweepProcessed.WithLabelValues(sweep, result).Inc()
}

func ObserveSweepDuration(sweep string, seconds float64) {
	sweepDuration.WithLabelValues(sweep).Observe(seconds)
}
