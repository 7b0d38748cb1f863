package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Mashups
	MashupsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "mashup_concepts_created_total",
			Help: "Total number of mashup concepts generated successfully",
		},
	)
	MashupDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mashup_generation_duration_seconds",
			Help:    "Histogram of end-to-end mashup generation durations in seconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8), // 1s..128s
		},
	)

	// LLM
	LLMRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mashup_llm_requests_total",
			Help: "Number of completion API requests by model",
		},
		[]string{"model"},
	)

	// Errors
	Errors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mashup_errors_total",
			Help: "Errors encountered in components",
		},
		[]string{"component", "type"},
	)
)

func init() {
	prometheus.MustRegister(
		MashupsCreated,
		MashupDurationSeconds,
		LLMRequests,
		Errors,
	)
}

func StartMetricsServer() {
	http.Handle("/metrics", promhttp.Handler())
	_ = http.ListenAndServe(":2112", nil)
}

// Mashups
func IncMashupsCreated() {
	MashupsCreated.Inc()
}

func ObserveMashupDuration(d time.Duration) {
	MashupDurationSeconds.Observe(d.Seconds())
}

// LLM
func IncLLMRequest(model string) {
	LLMRequests.WithLabelValues(model).Inc()
}

// Errors
func IncError(component, typ string) {
	Errors.WithLabelValues(component, typ).Inc()
}
