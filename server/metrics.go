package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "textscrub_http_requests_total",
			Help: "Total number of HTTP requests served.",
		},
		[]string{"method", "path", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "textscrub_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	censorTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "textscrub_censor_requests_total",
			Help: "Censor calls served, partitioned by whether the text changed.",
		},
		[]string{"changed"},
	)

	wordsAdded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "textscrub_dictionary_words_added_total",
			Help: "Words registered through the API.",
		},
	)
)

// observeRequest records one served request, bucketing the status code so
// the label set stays small.
func observeRequest(method, path string, status int, seconds float64) {
	bucket := "unknown"
	switch {
	case status >= 200 && status < 300:
		bucket = "2xx"
	case status >= 300 && status < 400:
		bucket = "3xx"
	case status >= 400 && status < 500:
		bucket = "4xx"
	case status >= 500:
		bucket = "5xx"
	}
	requestsTotal.WithLabelValues(method, path, bucket).Inc()
	requestDuration.WithLabelValues(method, path).Observe(seconds)
}

// metricsHandler exposes the Prometheus registry.
func metricsHandler() http.Handler {
	return promhttp.Handler()
}
