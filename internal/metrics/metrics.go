package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts served requests by route and status class.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "netload_http_requests_total",
		Help: "HTTP requests served, by method, route and status code.",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes request latency per route.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "netload_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds, by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	// Estimations counts hidden-load estimations, split by whether the
	// capacity used was measured or the assumed fallback.
	Estimations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "netload_estimations_total",
		Help: "Hidden-load estimations performed, by capacity origin.",
	}, []string{"capacity"})
)
