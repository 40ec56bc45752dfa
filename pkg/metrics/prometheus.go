package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder records interval-generation metrics with Prometheus.
type Recorder struct {
	requestsTotal     *prometheus.CounterVec
	intervalsReturned *prometheus.HistogramVec
	errorsTotal       *prometheus.CounterVec
	cacheLookups      *prometheus.CounterVec
	latency           *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chrono_interval_requests_total",
				Help: "Total number of interval generation requests",
			},
			[]string{"grouping"},
		),
		intervalsReturned: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chrono_intervals_returned",
				Help:    "Number of intervals returned per request",
				Buckets: []float64{1, 5, 10, 50, 100, 500, 1000, 5000, 10000},
			},
			[]string{"grouping"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chrono_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		cacheLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chrono_cache_lookups_total",
				Help: "Cache lookups for computed interval sequences",
			},
			[]string{"result"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chrono_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordRequest records an interval generation request and its result size.
func (r *Recorder) RecordRequest(grouping string, count int) {
	r.requestsTotal.WithLabelValues(grouping).Inc()
	r.intervalsReturned.WithLabelValues(grouping).Observe(float64(count))
}

// RecordError records an error occurrence by kind.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordCacheLookup records a cache hit or miss.
func (r *Recorder) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(result).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
